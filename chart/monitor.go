package chart

// EdgeMonitor is the core's sole extensibility point (C9): Note is invoked
// exactly once per edge that was actually incorporated (Store.Incorporate
// returned true). Predecessor-merge events are silent. A nil monitor is
// valid and means nothing is emitted.
type EdgeMonitor interface {
	Note(e *Edge)
}

// TraceMonitor is a ready-made EdgeMonitor that logs each incorporated edge
// through the package tracer, 1-based counter prefixed, mirroring the
// source's own dumpState-style trace output.
type TraceMonitor struct {
	count int
}

// NewTraceMonitor returns a TraceMonitor with its counter reset to zero.
func NewTraceMonitor() *TraceMonitor {
	return &TraceMonitor{}
}

// Note implements EdgeMonitor.
func (m *TraceMonitor) Note(e *Edge) {
	m.count++
	tracer().Infof("%d: %s", m.count, e)
}
