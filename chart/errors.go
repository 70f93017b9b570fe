package chart

import "github.com/npillmayer/schuko/gconf"

// ConfigurationError is returned by LoadGrammar (and so by
// NewParserFromSource) when the grammar source fails or yields no rules.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "chart: " + e.Msg
}

// stuck reports an internal invariant violation. By default it logs and
// continues (so that a single malformed edge does not bring down a batch of
// parses); set the configuration flag panic-on-chart-invariant-violation to
// have it panic instead, for debugging a specific failure.
func stuck(msg string) bool {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-chart-invariant-violation") {
		panic(`chart invariant violated.

Configuration flag panic-on-chart-invariant-violation is set to true. It is
aimed at helping to debug the chart engine and do a post-mortem of why an
edge ended up in an inconsistent state. However, if this is a production
environment and you did not expect this to panic, please unset
panic-on-chart-invariant-violation to its default (false).

` + msg)
	}
	return true
}
