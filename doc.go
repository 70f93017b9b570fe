/*
Package chartparse implements an active, agenda-driven chart parser for
context-free grammars augmented with atomic feature constraints, together
with a randomized tree generator over the same grammar.

Package structure is as follows:

■ chart: Package chart implements the core engine — edges, the agenda, the
chart store, the bottom-up and top-down (Earley-style) prediction strategies,
and the driver loop that ties them together. It also implements packed-forest
traversal (counting and indexing every parse tree encoded by an edge's trace
entries) directly on the Edge type.

■ generate: Package generate implements a randomized derivation generator for
a grammar, independent of the chart engine.

■ grammar: Package grammar implements a small textual grammar DSL loader and
ships a built-in example grammar, the same English fragment that package
chart's tests build by hand.

The base package (this one) contains the Category/feature algebra and the
Rule and Tree types, which are shared across chart, generate and grammar.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chartparse
