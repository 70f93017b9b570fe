/*
Command chartparse is a small interactive shell around the core library,
grounded on the teacher's own terex/terexlang/trepl REPL: readline for line
editing, pterm for colored output, a loaded grammar, and a loop that turns
each input line into either a parse or a random generation. Like trepl, it is
a thin demonstration shell, not part of the tested contract surface.

License

Governed by a 3-Clause BSD license.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/cbrew/chartparse"
	"github.com/cbrew/chartparse/chart"
	"github.com/cbrew/chartparse/generate"
	"github.com/cbrew/chartparse/grammar"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func tracer() tracing.Trace {
	return tracing.Select("chartparse.cmd")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " chartparse",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	grammarFile := flag.String("grammar", "", "grammar DSL file to load (defaults to the built-in English fragment)")
	strategyName := flag.String("strategy", "bottomup", "prediction strategy: bottomup|topdown")
	rootCats := flag.String("root", "S", "comma-separated admissible root categories")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	flag.Parse()

	tracing.Select("chartparse.cmd").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("chartparse interactive shell — type a sentence, :gen CAT, or :quit")

	rules, err := loadRules(*grammarFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	strategy, err := newStrategy(*strategyName)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	parser := chart.NewParser(rules, chart.WithStrategy(strategy))
	gen := generate.NewGenerator(rules)
	topCats := strings.Split(*rootCats, ",")

	repl, err := readline.New("chartparse> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	runREPL(repl, parser, gen, topCats)
}

// loadRules resolves the -grammar flag: empty means the built-in fragment,
// otherwise a DSL file loaded through package grammar.
func loadRules(path string) ([]*chartparse.Rule, error) {
	if path == "" {
		return grammar.BuiltinRules()
	}
	loader, err := grammar.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chartparse: reading grammar file %s: %w", path, err)
	}
	return chart.LoadGrammar(loader)
}

func newStrategy(name string) (chart.Strategy, error) {
	switch strings.ToLower(name) {
	case "bottomup", "":
		return chart.NewBottomUp(), nil
	case "topdown":
		return chart.NewTopDown(), nil
	default:
		return nil, fmt.Errorf("chartparse: unknown strategy %q (want bottomup or topdown)", name)
	}
}

// runREPL reads lines until EOF (ctrl-D) or ":quit". Most lines are treated
// as a sentence to parse; a line starting with ":gen" draws a random
// derivation from the named category instead.
func runREPL(repl *readline.Instance, parser *chart.Parser, gen *generate.Generator, topCats []string) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			break
		}
		if rest, ok := strings.CutPrefix(line, ":gen"); ok {
			handleGenerate(gen, strings.TrimSpace(rest))
			continue
		}
		handleParse(parser, line, topCats)
	}
	pterm.Info.Println("goodbye")
}

func handleParse(parser *chart.Parser, line string, topCats []string) {
	sentence := strings.Fields(line)
	result := parser.Parse(sentence, topCats)
	if len(result.Solutions) == 0 {
		pterm.Error.Println("no parse")
		return
	}
	pterm.Info.Println(fmt.Sprintf("%d root edge(s), %d complete / %d partial edges total",
		len(result.Solutions), result.NumCompleteEdges, result.NumPartialEdges))
	for _, root := range result.Solutions {
		count := root.CountTrees()
		pterm.Info.Println(fmt.Sprintf("%s: %d tree(s)", root, count))
		renderTree(root.FirstTree())
	}
}

func handleGenerate(gen *generate.Generator, atom string) {
	if atom == "" {
		pterm.Error.Println(":gen requires a category, e.g. ':gen S'")
		return
	}
	tree := gen.Generate(chartparse.NewCategory(atom))
	pterm.Info.Println(strings.Join(tree.Yield(), " "))
	renderTree(tree)
}

func renderTree(t *chartparse.Tree) {
	root := treeNode(t)
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		tracer().Errorf("rendering tree: %v", err)
	}
}

// treeNode converts a chartparse.Tree into a pterm.TreeNode, mirroring the
// indentedListFrom/leveledElem conversion trepl does for its own AST type.
func treeNode(t *chartparse.Tree) pterm.TreeNode {
	if t.IsLeaf() {
		return pterm.TreeNode{Text: fmt.Sprintf("(%s %s)", t.Label.Atom, t.Word)}
	}
	node := pterm.TreeNode{Text: t.Label.String()}
	for _, c := range t.Children {
		node.Children = append(node.Children, treeNode(c))
	}
	return node
}
