package treasury

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r coffer.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle(pathInitMsg, InitHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathDepositFeesMsg, DepositFeesHandler{ctrl: ctrl})
	r.Handle(pathDistributeLeaderboardMsg, DistributeLeaderboardHandler{auth: auth, ctrl: ctrl})
}

// InitHandler creates the treasury state.
type InitHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ coffer.Handler = InitHandler{}

// Check verifies the message is signed by the admin and the treasury does
// not exist yet.
func (h InitHandler) Check(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	var msg InitMsg
	if err := coffer.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Admin, "admin"); err != nil {
		return nil, err
	}
	if s, err := loadState(db); err != nil {
		return nil, err
	} else if s != nil {
		return nil, errors.Wrap(errors.ErrDuplicate, "treasury already initialized")
	}
	return &coffer.CheckResult{}, nil
}

// Deliver creates the treasury state.
func (h InitHandler) Deliver(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	var msg InitMsg
	if err := coffer.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	events, err := h.ctrl.Initialize(ctx, db, msg.Admin, msg.AssetContract, msg.Factory)
	if err != nil {
		return nil, err
	}
	return &coffer.DeliverResult{Events: events}, nil
}

// DepositFeesHandler collects fees into a pool.
type DepositFeesHandler struct {
	ctrl *Controller
}

var _ coffer.Handler = DepositFeesHandler{}

// Check verifies the treasury exists and the source can cover the amount.
// Authorization of the source is left to the asset ledger.
func (h DepositFeesHandler) Check(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	var msg DepositFeesMsg
	if err := coffer.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	s, err := mustLoadState(db)
	if err != nil {
		return nil, err
	}
	balance, err := h.ctrl.ledger.Balance(db, s.AssetContract, msg.Source)
	if err != nil {
		return nil, errors.Wrap(err, "source balance")
	}
	if balance.LT(msg.Amount) {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance %s, need %s", balance, msg.Amount)
	}
	return &coffer.CheckResult{}, nil
}

// Deliver moves the fees and credits the pool.
func (h DepositFeesHandler) Deliver(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	var msg DepositFeesMsg
	if err := coffer.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	events, err := h.ctrl.DepositFees(ctx, db, msg.Source, msg.Category, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &coffer.DeliverResult{Events: events}, nil
}

// DistributeLeaderboardHandler pays out the leaderboard pool.
type DistributeLeaderboardHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ coffer.Handler = DistributeLeaderboardHandler{}

// Check verifies the message is signed by the admin and the reward set
// fits the configured limit.
func (h DistributeLeaderboardHandler) Check(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	var msg DistributeLeaderboardMsg
	if err := coffer.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	s, err := mustLoadState(db)
	if err != nil {
		return nil, err
	}
	if err := x.RequireAddress(ctx, h.auth, s.Admin, "admin"); err != nil {
		return nil, err
	}
	if err := validateRewardSet(db, msg.Rewards); err != nil {
		return nil, err
	}
	return &coffer.CheckResult{}, nil
}

// Deliver pays out the pool.
func (h DistributeLeaderboardHandler) Deliver(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	var msg DistributeLeaderboardMsg
	if err := coffer.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	events, err := h.ctrl.DistributeLeaderboard(ctx, db, msg.Rewards)
	if err != nil {
		return nil, err
	}
	return &coffer.DeliverResult{Events: events}, nil
}
