package autherr

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the session manager and credential verifiers.
// Callers match on these with errors.Is; any message is attached by wrapping.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrServerError          = errors.New("server error")
	ErrNetworkError         = errors.New("network error")
	ErrTokenExpired         = errors.New("token expired")
	ErrNoTokenAvailable     = errors.New("no token available")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknown              = errors.New("unknown error")
)

var kinds = []error{
	ErrInvalidCredentials,
	ErrServerError,
	ErrNetworkError,
	ErrTokenExpired,
	ErrNoTokenAvailable,
	ErrInvalidConfiguration,
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Kind returns the error kind err belongs to. A nil error has no kind; anything
// outside the taxonomy is reported as ErrUnknown.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrUnknown
}
