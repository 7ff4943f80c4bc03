package utils

import (
	"strconv"
	"time"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	phaseCheck   = "check"
	phaseDeliver = "deliver"
)

// Metrics is a decorator that counts processed messages and measures how
// long they take, labelled by message path.
type Metrics struct {
	messages *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ coffer.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator with collectors registered on reg.
// A nil registerer leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		messages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coffer_messages_total",
				Help: "Total number of processed messages",
			},
			[]string{"path", "phase", "code"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coffer_message_duration_seconds",
				Help:    "Duration of message processing",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
			},
			[]string{"path", "phase"},
		),
	}
}

// Check records the outcome of the wrapped Check call.
func (m *Metrics) Check(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Checker) (*coffer.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	m.observe(coffer.GetPath(tx), phaseCheck, start, err)
	return res, err
}

// Deliver records the outcome of the wrapped Deliver call.
func (m *Metrics) Deliver(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Deliverer) (*coffer.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	m.observe(coffer.GetPath(tx), phaseDeliver, start, err)
	return res, err
}

func (m *Metrics) observe(path, phase string, start time.Time, err error) {
	code := strconv.FormatUint(uint64(errors.Code(err)), 10)
	m.messages.WithLabelValues(path, phase, code).Inc()
	m.duration.WithLabelValues(path, phase).Observe(time.Since(start).Seconds())
}
