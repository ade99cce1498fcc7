package util

import "errors"

// ErrNoAttempts is returned by Attempt when no strategies are supplied.
var ErrNoAttempts = errors.New("no attempts supplied")

// Attempt runs strategies in order and returns the first successful result.
// When every strategy fails, the last error is returned alongside the zero
// value, so callers can substitute a defined degraded result.
func Attempt[T any](strategies ...func() (T, error)) (T, error) {
	var zero T
	if len(strategies) == 0 {
		return zero, ErrNoAttempts
	}
	var lastErr error
	for _, strategy := range strategies {
		out, err := strategy()
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return zero, lastErr
}
