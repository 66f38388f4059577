package domain

import "errors"

// Sentinel errors for cross-package error classification.
// Builders and the CLI wrap these so callers can classify failures with
// errors.Is without depending on provider packages.
//
//	return fmt.Errorf("%w: port speed must be positive, got %d", domain.ErrInvalidArgument, speed)
var (
	// ErrInvalidArgument indicates a rejected option value: an empty
	// required string, an out-of-range number, or a list with an empty
	// or non-positive element. The builder is left in its prior state.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidDomain indicates a domain name that is not a valid
	// hostname or does not carry a recognized public suffix.
	ErrInvalidDomain = errors.New("invalid domain name")

	// ErrUnknownProvider indicates a provider name with no registered
	// options factory.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrUnknownProfile indicates a profile name not present in the
	// profile store.
	ErrUnknownProfile = errors.New("unknown profile")
)
