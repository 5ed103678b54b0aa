// Package metrics defines and registers all custom Prometheus metrics for the
// operator console. It is the single source of truth for metric names,
// labels, and help strings.
//
// The vectors register with the default registry on import; the echoprometheus
// handler mounted at /metrics exposes them alongside the request metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
)

const namespace = "console"

// ── Dispatch metrics ──────────────────────────────────────────────────────────

// DispatchTotal counts dispatched commands.
// Labels:
//   - kind: the command kind (e.g. "deposit", "approve-withdrawal")
//   - outcome: "success", "unauthorized", "invalid_input" or "remote_rejected"
var DispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_total",
		Help:      "Total number of dispatched commands, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// DispatchDuration measures a dispatch from role gate to ledger response.
var DispatchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispatch_duration_seconds",
		Help:      "Duration of command dispatch including the ledger call.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - outcome: same values as DispatchTotal
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// Recorder feeds the core observers into the vectors above.
type Recorder struct{}

var (
	_ ports.DispatchObserver = Recorder{}
	_ ports.LoginObserver    = Recorder{}
)

func (Recorder) ObserveDispatch(kind domain.CommandKind, failure domain.FailureKind, elapsed time.Duration) {
	DispatchTotal.WithLabelValues(string(kind), failure.String()).Inc()
	DispatchDuration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

func (Recorder) ObserveLogin(failure domain.FailureKind) {
	LoginsTotal.WithLabelValues(failure.String()).Inc()
}
