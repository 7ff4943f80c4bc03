/*
Package errors provides the error kinds of the ledger.

Every error returned to a client wraps a kind registered with Register,
and the client receives the code of that kind. Kinds shared by all modules
are declared here. A module registers its own only when none of these fit,
as x/treasury does.

Create errors with ErrXyz.New or Wrap at the point of failure, so the
stack trace is recorded there. Print with %+v to see it.
*/
package errors
