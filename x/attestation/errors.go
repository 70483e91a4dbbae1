package attestation

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrInactiveVerifier is returned when a deactivated charity tries
	// to verify a record.
	ErrInactiveVerifier = errors.Register(1130, "verifier not active")

	// ErrAlreadyVerified is returned when writing a record that was
	// already verified. Verifications are write once.
	ErrAlreadyVerified = errors.Register(1131, "record already verified")
)
