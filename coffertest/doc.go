// Package coffertest provides mocks and helpers for testing extensions:
// authenticators, handlers, decorators, transactions and deterministic keys.
package coffertest
