/*
Package schedule implements recurring monthly donations.

A donor escrows the full donation amount when creating a schedule. The
escrowed funds are then paid out to a verified charity in monthly slices,
with a platform fee deducted from every slice. Distributions are executed
either by anyone submitting an execute message or automatically at the end
of a block by the Executor ticker.
*/
package schedule
