/*
Package portfolio implements themed charity funds.

A fund groups several verified charities. Donations to the fund are held on
a fund controlled account and split between the member charities according
to the fund ratios. Each charity claims its own allocation whenever it
wants. Ratios start as an equal split and can later be tuned by the admin
or, once governance is activated, only by the governance address.
*/
package portfolio
