package wampmetrics

import "github.com/xconnio/wampproto-go/wampproto"

// CorrelationHook adapts a Collector to wampproto.MetricsHook, so it can be
// passed directly to wampproto.WithMetrics without wampproto importing
// Prometheus.
type CorrelationHook struct {
	collector *Collector
}

// NewCorrelationHook wraps c as a wampproto.MetricsHook.
func NewCorrelationHook(c *Collector) *CorrelationHook {
	return &CorrelationHook{collector: c}
}

// CorrelationError implements wampproto.MetricsHook.
func (h *CorrelationHook) CorrelationError() {
	h.collector.IncCorrelationErrors()
}

var _ wampproto.MetricsHook = (*CorrelationHook)(nil)
