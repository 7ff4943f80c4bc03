/*

Package coffer defines interfaces used throughout the ledger, such as: storage,
transactions, handlers and events. It also contains helpers to work with
context, addresses and amounts.
Look into this package to get an brief overview of design decisions made
around interfaces and extension building blocks. Extensions live in the x/
directory, x/treasury being the main one.

*/

package coffer
