/*
Package donation implements direct charitable donations.

A donor sends funds to a registered charity in a single transaction. The
platform deducts a configurable fee (expressed in basis points, capped at 5%)
from the donated amount and moves it, together with an optional tip, to the
platform treasury. Every successful donation updates the per charity running
total, the cumulative donor ledger and produces an immutable tax receipt.

The receipt is classified as DUAL_BENEFICIARY whenever the treasury received
a nonzero amount (fee and/or tip) and SINGLE_BENEFICIARY otherwise.
*/
package donation
