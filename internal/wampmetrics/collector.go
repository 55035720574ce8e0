// Package wampmetrics exposes Prometheus metrics for a wampctl client
// process: join attempts, active sessions, per-kind message counts, and
// correlation/auth failures.
package wampmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// -------------------------------------------------------------------------
// Prometheus Metric Constants
// -------------------------------------------------------------------------

const (
	namespace = "wampctl"
	subsystem = "session"
)

// Label names for session metrics.
const (
	labelRealm      = "realm"
	labelAuthMethod = "auth_method"
	labelDirection  = "direction"
	labelKind       = "kind"
)

// -------------------------------------------------------------------------
// Collector — Prometheus WAMP Client Metrics
// -------------------------------------------------------------------------

// Collector holds all wampctl Prometheus metrics.
//
//   - JoinAttempts / JoinFailures track join attempts and the ones that
//     failed after the connection was dialed.
//   - ActiveSessions tracks currently joined sessions.
//   - MessagesTotal counts messages by direction (sent/received) and kind.
//   - CorrelationErrors counts replies that didn't match any tracked
//     request (see wampproto.ErrUnknownCorrelation).
//   - AuthFailures counts errors returned while processing the router's
//     join replies (ABORT, CHALLENGE, WELCOME).
type Collector struct {
	// JoinAttempts counts HELLO sends per realm/auth method.
	JoinAttempts *prometheus.CounterVec

	// JoinFailures counts failed join attempts per realm/auth method: any
	// error between dialing and WELCOME, including transport errors, ABORT
	// and authentication errors.
	JoinFailures *prometheus.CounterVec

	// ActiveSessions tracks the number of currently joined sessions.
	ActiveSessions *prometheus.GaugeVec

	// MessagesTotal counts messages by direction ("sent"/"received") and
	// message kind.
	MessagesTotal *prometheus.CounterVec

	// CorrelationErrors counts messages received for a request_id this
	// session never tracked.
	CorrelationErrors prometheus.Counter

	// AuthFailures counts errors the Joiner returns while processing a
	// router reply during the join: authenticator errors answering a
	// CHALLENGE, ABORT, and malformed or unexpected replies alike. It does
	// not count authenticator errors separately from the others.
	AuthFailures *prometheus.CounterVec
}

// NewCollector creates a Collector with all wampctl metrics registered
// against the provided prometheus.Registerer. If reg is nil,
// prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := newMetrics()

	reg.MustRegister(
		c.JoinAttempts,
		c.JoinFailures,
		c.ActiveSessions,
		c.MessagesTotal,
		c.CorrelationErrors,
		c.AuthFailures,
	)

	return c
}

// newMetrics creates all Prometheus metric vectors without registering them.
func newMetrics() *Collector {
	realmAuthLabels := []string{labelRealm, labelAuthMethod}
	directionKindLabels := []string{labelDirection, labelKind}

	return &Collector{
		JoinAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "join_attempts_total",
			Help:      "Total HELLO handshakes attempted.",
		}, realmAuthLabels),

		JoinFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "join_failures_total",
			Help:      "Total join attempts that failed after dialing, including transport errors, ABORT and authentication errors.",
		}, realmAuthLabels),

		ActiveSessions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_sessions",
			Help:      "Number of currently joined sessions.",
		}, []string{labelRealm}),

		MessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "messages_total",
			Help:      "Total WAMP messages exchanged, by direction and kind.",
		}, directionKindLabels),

		CorrelationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "correlation_errors_total",
			Help:      "Total messages received for an untracked or already-resolved request_id.",
		}),

		AuthFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "auth_failures_total",
			Help:      "Total errors processing router replies during the join, including authenticator errors, ABORT and malformed replies.",
		}, realmAuthLabels),
	}
}

// -------------------------------------------------------------------------
// Join Lifecycle
// -------------------------------------------------------------------------

// RecordJoinAttempt increments the join attempts counter for the given
// realm/auth method pair. Called before SendHello.
func (c *Collector) RecordJoinAttempt(realm, authMethod string) {
	c.JoinAttempts.WithLabelValues(realm, authMethod).Inc()
}

// RecordJoinFailure increments the join failures counter. Called on any
// failure between dialing and WELCOME: a transport send/receive error,
// ABORT, or an authenticator error.
func (c *Collector) RecordJoinFailure(realm, authMethod string) {
	c.JoinFailures.WithLabelValues(realm, authMethod).Inc()
}

// RegisterSession increments the active sessions gauge for realm. Called
// once WELCOME arrives.
func (c *Collector) RegisterSession(realm string) {
	c.ActiveSessions.WithLabelValues(realm).Inc()
}

// UnregisterSession decrements the active sessions gauge for realm. Called
// when the command that joined the session returns, on every exit path.
func (c *Collector) UnregisterSession(realm string) {
	c.ActiveSessions.WithLabelValues(realm).Dec()
}

// -------------------------------------------------------------------------
// Message Counters
// -------------------------------------------------------------------------

// IncMessagesSent increments the sent-message counter for kind (e.g.
// "CALL", "PUBLISH").
func (c *Collector) IncMessagesSent(kind string) {
	c.MessagesTotal.WithLabelValues("sent", kind).Inc()
}

// IncMessagesReceived increments the received-message counter for kind.
func (c *Collector) IncMessagesReceived(kind string) {
	c.MessagesTotal.WithLabelValues("received", kind).Inc()
}

// -------------------------------------------------------------------------
// Errors
// -------------------------------------------------------------------------

// IncCorrelationErrors increments the correlation error counter. Called
// whenever Session.ReceiveMessage returns wampproto.ErrUnknownCorrelation.
func (c *Collector) IncCorrelationErrors() {
	c.CorrelationErrors.Inc()
}

// IncAuthFailures increments the authentication failure counter for the
// given realm/auth method pair. Called whenever Joiner.Receive returns an
// error during the join.
func (c *Collector) IncAuthFailures(realm, authMethod string) {
	c.AuthFailures.WithLabelValues(realm, authMethod).Inc()
}
