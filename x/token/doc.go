/*
Package token implements a fungible asset ledger.

Balances are kept per asset and holder. Any number of assets can live in
the same store, each identified by an address. Transfers must be
authorized by the holder being debited.
*/
package token
