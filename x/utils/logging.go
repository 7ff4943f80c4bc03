package utils

import (
	"time"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one log line per processed transaction. Failures are
// logged at error level with their error code. Successful checks go to
// debug, successful deliveries to info together with the number of events
// they emitted.
type Logging struct{}

var _ coffer.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Checker) (*coffer.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logFailure(logger, err)
	default:
		logger.Debug(res.Log)
	}
	return res, err
}

func (Logging) Deliver(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Deliverer) (*coffer.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logFailure(logger, err)
	default:
		logger.With("events", len(res.Events)).Info(res.Log)
	}
	return res, err
}

func txLogger(ctx coffer.Context, tx coffer.Tx, start time.Time) log.Logger {
	return coffer.GetLogger(ctx).With(
		"path", coffer.GetPath(tx),
		"took_us", int64(time.Since(start)/time.Microsecond),
	)
}

func logFailure(logger log.Logger, err error) {
	logger.With("code", errors.Code(err), "err", err).Error("transaction failed")
}
