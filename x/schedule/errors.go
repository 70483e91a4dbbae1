package schedule

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrUnverifiedCharity is returned when creating a schedule for an
	// address that is not a verified charity.
	ErrUnverifiedCharity = errors.Register(1110, "charity not verified")

	// ErrUsdValueTooLow is returned when the total escrowed amount of a
	// schedule is worth less than the required minimum.
	ErrUsdValueTooLow = errors.Register(1111, "usd value below minimum")

	// ErrInactiveSchedule is returned when operating on a schedule that
	// already finished or was cancelled.
	ErrInactiveSchedule = errors.Register(1112, "schedule not active")
)
