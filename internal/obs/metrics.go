package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics collects ledger operation counters on its own registry so tests
// can build throwaway instances without touching the default registry.
type Metrics struct {
	registry     *prometheus.Registry
	transactions *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	balances     *prometheus.GaugeVec
	buildInfo    *prometheus.GaugeVec
}

// NewMetrics builds a fresh collector.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	return &Metrics{
		registry: registry,
		transactions: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bank_transactions_total",
			Help: "Ledger operations recorded, by kind.",
		}, []string{"kind"}),
		rejections: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bank_rejections_total",
			Help: "Ledger operations rejected before any mutation, by reason.",
		}, []string{"reason"}),
		balances: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "bank_account_balance",
			Help: "Current account balance in dollars.",
		}, []string{"holder", "account"}),
		buildInfo: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "build_info",
			Help: "PollyWolly bank build information.",
		}, []string{"version"}),
	}
}

// SetBuildInfo sets build_info{version="..."} 1.
func (m *Metrics) SetBuildInfo(version string) {
	m.buildInfo.WithLabelValues(version).Set(1)
}

// RecordTransaction counts one recorded operation: "deposit", "withdraw"
// or "transfer".
func (m *Metrics) RecordTransaction(kind string) {
	m.transactions.WithLabelValues(kind).Inc()
}

// RecordRejection counts one rejected operation by reason, e.g.
// "amount_not_positive" or "insufficient_funds".
func (m *Metrics) RecordRejection(reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}

// SetBalance publishes an account's balance after an operation.
func (m *Metrics) SetBalance(holder, account string, balance decimal.Decimal) {
	f, _ := balance.Float64()
	m.balances.WithLabelValues(holder, account).Set(f)
}

// Handler exposes the collector's registry in prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts a metrics listener on addr. It returns the server so the
// caller can shut it down; errors other than a clean close are logged.
func (m *Metrics) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Logger().WithError(err).Error("metrics listener failed")
		}
	}()
	return srv
}
