package treasury

import (
	"github.com/boxmeout/coffer/errors"
)

// treasury takes 400-419
var (
	ErrInvalidAmount     = errors.Register(400, "invalid fee amount")
	ErrInvalidCategory   = errors.Register(401, "invalid fee category")
	ErrInvalidShareTotal = errors.Register(402, "invalid reward share total")
	ErrNotInitialized    = errors.Register(403, "treasury not initialized")
)

// Failure is the kind of a failed treasury operation.
type Failure int

const (
	// FailureNone is the classification of a nil error.
	FailureNone Failure = iota
	// FailureAuthorization means a required authorization proof was
	// missing, either the admin or the debited holder.
	FailureAuthorization
	// FailureValidation means the request was malformed and was
	// rejected before any mutation.
	FailureValidation
	// FailureInsufficientFunds means the asset ledger could not cover a
	// transfer.
	FailureInsufficientFunds
	// FailureUnsetDependency means the treasury was not initialized.
	FailureUnsetDependency
	// FailureUnknown is any other error, for example a storage failure.
	FailureUnknown
)

var failureNames = map[Failure]string{
	FailureNone:              "none",
	FailureAuthorization:     "authorization",
	FailureValidation:        "validation",
	FailureInsufficientFunds: "insufficient_funds",
	FailureUnsetDependency:   "unset_dependency",
	FailureUnknown:           "unknown",
}

func (f Failure) String() string {
	if name, ok := failureNames[f]; ok {
		return name
	}
	return "unknown"
}

var validationErrors = []*errors.Error{
	ErrInvalidAmount,
	ErrInvalidCategory,
	ErrInvalidShareTotal,
	errors.ErrAmount,
	errors.ErrInput,
	errors.ErrMsg,
	errors.ErrEmpty,
	errors.ErrDuplicate,
	errors.ErrOverflow,
	errors.ErrType,
}

// Classify maps an error returned by this package to the failure kind a
// caller can act upon.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.ErrUnauthorized.Is(err):
		return FailureAuthorization
	case errors.ErrInsufficientAmount.Is(err):
		return FailureInsufficientFunds
	case ErrNotInitialized.Is(err):
		return FailureUnsetDependency
	}
	for _, kind := range validationErrors {
		if kind.Is(err) {
			return FailureValidation
		}
	}
	return FailureUnknown
}
