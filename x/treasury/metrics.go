package treasury

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the treasury activity and pool levels.
type Metrics struct {
	deposits      *prometheus.CounterVec
	distributions prometheus.Counter
	pools         *prometheus.GaugeVec
}

// NewMetrics creates treasury collectors registered on reg. A nil
// registerer leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		deposits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coffer_treasury_deposits_total",
				Help: "Total number of successful fee deposits",
			},
			[]string{"category"},
		),
		distributions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "coffer_treasury_distributions_total",
				Help: "Total number of non empty leaderboard distributions",
			},
		),
		pools: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "coffer_treasury_pool",
				Help: "Balance of a treasury pool after the last change",
			},
			[]string{"category"},
		),
	}
}

func (m *Metrics) deposited(c FeeCategory, pool sdkmath.Int) {
	if m == nil {
		return
	}
	m.deposits.WithLabelValues(c.String()).Inc()
	m.pools.WithLabelValues(c.String()).Set(toFloat(pool))
}

func (m *Metrics) distributed(pool sdkmath.Int) {
	if m == nil {
		return
	}
	m.distributions.Inc()
	m.pools.WithLabelValues(CategoryLeaderboard.String()).Set(toFloat(pool))
}

// toFloat approximates an amount for reporting.
func toFloat(a sdkmath.Int) float64 {
	f, _ := new(big.Float).SetInt(a.BigInt()).Float64()
	return f
}
