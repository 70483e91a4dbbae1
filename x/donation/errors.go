package donation

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrInactiveCharity is returned when a donation targets a charity
	// that is registered but deactivated.
	ErrInactiveCharity = errors.Register(1100, "charity not active")

	// ErrInsufficientDonation is returned when the donated amount is
	// below the configured minimum.
	ErrInsufficientDonation = errors.Register(1101, "donation below minimum")

	// ErrInvalidTipOption is returned when a suggested tip index is not
	// one of the preset rates.
	ErrInvalidTipOption = errors.Register(1102, "invalid tip option")

	// ErrPaused is returned by all donation entry points while the
	// module is paused.
	ErrPaused = errors.Register(1103, "donations paused")
)
