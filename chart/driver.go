package chart

/*
Driver loop (C7):

	initialize store; strategy.initialize(sentence, topCats)
	while agenda not empty:
	    e = agenda.dequeue()
	    incorporated = strategy.incorporate(e)
	    if incorporated and monitor != null: monitor.note(e)
	return solutions(topCats)

Termination is guaranteed by strict edge deduplication over a finite,
epsilon-free grammar and finite input (§4.7).
*/

import "github.com/cbrew/chartparse"

// GrammarSource is the external collaborator that supplies a parser's rule
// set — grammar file I/O and the DSL parser are out of scope for this
// package; package grammar implements one concrete GrammarSource.
type GrammarSource interface {
	Rules() ([]*chartparse.Rule, error)
}

// LoadGrammar pulls rules from source, failing cleanly with a
// ConfigurationError on a nil/empty result rather than letting an empty
// grammar silently parse nothing.
func LoadGrammar(source GrammarSource) ([]*chartparse.Rule, error) {
	rules, err := source.Rules()
	if err != nil {
		return nil, &ConfigurationError{Msg: err.Error()}
	}
	if len(rules) == 0 {
		return nil, &ConfigurationError{Msg: "grammar source produced no rules"}
	}
	return rules, nil
}

// Parser ties together a rule set, a Strategy and an optional EdgeMonitor
// into repeatable parse calls. Create one with NewParser and configure it
// with Option values, mirroring the teacher's functional-options parser
// constructor.
type Parser struct {
	rules    []*chartparse.Rule
	strategy Strategy
	monitor  EdgeMonitor
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithStrategy selects the prediction strategy. Defaults to BottomUp.
func WithStrategy(s Strategy) Option {
	return func(p *Parser) { p.strategy = s }
}

// WithMonitor attaches an EdgeMonitor. Defaults to none.
func WithMonitor(m EdgeMonitor) Option {
	return func(p *Parser) { p.monitor = m }
}

// NewParser builds a Parser over an already-loaded rule set.
func NewParser(rules []*chartparse.Rule, opts ...Option) *Parser {
	p := &Parser{rules: rules, strategy: NewBottomUp()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewParserFromSource loads rules from source via LoadGrammar before
// building the Parser.
func NewParserFromSource(source GrammarSource, opts ...Option) (*Parser, error) {
	rules, err := LoadGrammar(source)
	if err != nil {
		return nil, err
	}
	return NewParser(rules, opts...), nil
}

// SetStrategy replaces the active strategy.
func (p *Parser) SetStrategy(s Strategy) {
	p.strategy = s
}

// SetMonitor replaces the active monitor (nil disables monitoring).
func (p *Parser) SetMonitor(m EdgeMonitor) {
	p.monitor = m
}

// Result bundles a parse's solutions together with the chart it was built
// in, so callers can both enumerate trees and inspect the edge counters used
// for strategy-efficiency comparisons (§8, S6).
type Result struct {
	Solutions        []*Edge
	Store            *Store
	NumCompleteEdges int
	NumPartialEdges  int
}

// Parse runs the driver loop of §4.7 over sentence, admitting any complete
// root edge whose label atom is in topCats.
func (p *Parser) Parse(sentence []string, topCats []string) *Result {
	store := NewStore(uint64(len(sentence)))
	agenda := NewAgenda()
	topSet := make(map[string]bool, len(topCats))
	for _, c := range topCats {
		topSet[c] = true
	}

	p.strategy.Initialize(sentence, topSet, p.rules, store, agenda)
	for {
		e, ok := agenda.Dequeue()
		if !ok {
			break
		}
		if store.Incorporate(e, p.strategy, agenda) && p.monitor != nil {
			p.monitor.Note(e)
		}
	}

	return &Result{
		Solutions:        store.Solutions(uint64(len(sentence)), topSet),
		Store:            store,
		NumCompleteEdges: store.NumCompleteEdges(),
		NumPartialEdges:  store.NumPartialEdges(),
	}
}
