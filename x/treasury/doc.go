/*
Package treasury implements the fee custody ledger of the platform.

Fees paid by other components are collected on the treasury account of an
asset ledger and accounted in three pools: platform, leaderboard and
creator. The admin can pay out the leaderboard pool to a list of winners,
each receiving a share expressed in basis points. Rounding remainders stay
in the pool for the next distribution.

Every mutating operation is atomic. Either all transfers and the pool
update are applied, or nothing is.
*/
package treasury
