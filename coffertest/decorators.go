package coffertest

import "github.com/boxmeout/coffer"

// Decorator counts the calls passing through it. When CheckErr or
// DeliverErr is set the call fails with it and never reaches the wrapped
// handler. Failed calls are counted too.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	checks     int
	deliveries int
}

var _ coffer.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx, next coffer.Checker) (*coffer.CheckResult, error) {
	d.checks++
	if err := d.CheckErr; err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx, next coffer.Deliverer) (*coffer.DeliverResult, error) {
	d.deliveries++
	if err := d.DeliverErr; err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int   { return d.checks }
func (d *Decorator) DeliverCallCount() int { return d.deliveries }
func (d *Decorator) CallCount() int        { return d.checks + d.deliveries }
