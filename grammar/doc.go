/*
Package grammar implements one concrete, tested GrammarSource (§6): a loader
for the textual grammar-file DSL described in the design ("grammar ... thatsall"
then "lexicon ... thatsall"), built on top of the root package's ParseRules
textual-form parser. The core parser (package chart) never imports this
package — it accepts rules constructed any way the caller likes, and a
*Loader merely happens to satisfy chart.GrammarSource's single method,
Rules() ([]*chartparse.Rule, error), structurally.

It also ships the small English-fragment grammar used throughout this
module's acceptance scenarios, once as DSL source text (exercising the
loader) and once as directly-constructed Rule values (exercising the root
package's Go constructor API), so tests can run without any file I/O.

License

Governed by a 3-Clause BSD license.
*/
package grammar

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("chartparse.grammar")
}
