package portfolio

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrUnverifiedCharity is returned when adding a charity that is not
	// verified to a fund.
	ErrUnverifiedCharity = errors.Register(1120, "charity not verified")

	// ErrInactiveFund is returned when donating to a deactivated fund.
	ErrInactiveFund = errors.Register(1121, "fund not active")

	// ErrPaused is returned when donations are suspended. Claims are
	// never paused.
	ErrPaused = errors.Register(1122, "donations paused")

	// ErrNothingToClaim is returned when a claim matches no positive
	// allocation balance.
	ErrNothingToClaim = errors.Register(1123, "nothing to claim")
)
