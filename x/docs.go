/*
Package x holds what the modules of the ledger share: the Authenticator
that tells a handler who authorized a transaction.

The modules live below it. x/treasury keeps the fee pools and pays the
leaderboard, x/token is the asset ledger it moves funds with, x/sigs
verifies signatures and x/utils has the generic decorators. The std
package wires them into an application.
*/
package x
