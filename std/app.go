/*
Package std contains the standard wiring of the fee ledger.

It is a good place to see how the components fit together: the decorator
chain, the router with the treasury routes, the genesis initializers and
the transaction decoder. You can replace any of them with a custom
implementation, as your deployment grows.
*/
package std

import (
	"path/filepath"
	"strings"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/app"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/store/iavl"
	"github.com/boxmeout/coffer/x"
	"github.com/boxmeout/coffer/x/sigs"
	"github.com/boxmeout/coffer/x/token"
	"github.com/boxmeout/coffer/x/treasury"
	"github.com/boxmeout/coffer/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the typical authentication: public key signatures
// of the transaction and the treasury account while it pays out.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, treasury.Authenticate{})
}

// Ledger returns the in-process asset ledger authorized by Authenticator.
func Ledger() token.Controller {
	return token.NewController(Authenticator())
}

// Chain returns a chain of decorators, to handle logging, recovery,
// metrics and authentication.
func Chain(reg prometheus.Registerer) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewMetrics(reg),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment the sequence
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the treasury handlers.
func Router(reg prometheus.Registerer, ledger treasury.AssetLedger) *app.Router {
	auth := Authenticator()
	ctrl := treasury.NewController(ledger, auth).
		WithMetrics(treasury.NewMetrics(reg))

	r := app.NewRouter()
	treasury.RegisterRoutes(r, auth, ctrl)
	return r
}

// Stack wires up the standard router with the standard decorator chain.
// All collectors are registered on reg.
func Stack(reg prometheus.Registerer, ledger treasury.AssetLedger) coffer.Handler {
	return Chain(reg).WithHandler(Router(reg, ledger))
}

// Initializers returns the genesis initializers of all extensions, in the
// order they must run.
func Initializers() coffer.Initializer {
	return coffer.ChainInitializers(
		token.Initializer{},
		treasury.Initializer{},
	)
}

// TxDecoder returns a decoder knowing all treasury messages.
func TxDecoder() app.TxDecoder {
	d := app.NewMsgDecoder()
	d.Register(&treasury.InitMsg{})
	d.Register(&treasury.DepositFeesMsg{})
	d.Register(&treasury.DistributeLeaderboardMsg{})
	return d.Decode
}

// Application constructs the standard application persisting to dbPath.
// An empty path keeps everything in memory.
func Application(dbPath string, reg prometheus.Registerer, logger log.Logger) (*app.App, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	a, err := app.NewApp(kv, TxDecoder(), Stack(reg, Ledger()), Initializers())
	if err != nil {
		return nil, errors.Wrap(err, "new app")
	}
	return a.WithLogger(logger), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (coffer.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	kv, err := iavl.NewCommitStore(dir, name)
	if err != nil {
		return nil, err
	}
	return kv, nil
}
