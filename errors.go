package primecount

import (
	"errors"
	"fmt"

	"github.com/hupe1980/primecount/forecast"
	"github.com/hupe1980/primecount/internal/lehmer"
)

var (
	// ErrInvalidIndex is returned when a prime index is not >= 1.
	ErrInvalidIndex = errors.New("index must be >= 1")

	// ErrPhiDepthExceeded is returned when the Meissel-Lehmer φ recursion
	// trips its depth guard. Indicates an internal bug, not bad input.
	ErrPhiDepthExceeded = errors.New("phi recursion depth exceeded")
)

// VerificationError reports a violated resolution postcondition:
// π(X) != Index or X not prime after correction. It must never occur in a
// correct build; it is a fatal internal-invariant failure, distinct from
// invalid input, and is never downgraded to an approximate answer.
type VerificationError struct {
	Index uint64
	X     uint64
	PiX   uint64
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("resolution verification failed: pi(%d) = %d, want index %d", e.X, e.PiX, e.Index)
}

// BackendDisagreementError reports a cross-validation failure between two
// counting backends at a specific argument.
type BackendDisagreementError struct {
	X       uint64
	Want    uint64 // baseline (direct sieve) result
	Got     uint64
	Backend Backend
}

func (e *BackendDisagreementError) Error() string {
	return fmt.Sprintf("backend disagreement at x=%d: %s returned %d, baseline returned %d", e.X, e.Backend, e.Got, e.Want)
}

// RangeVerificationError reports a non-prime or miscounted entry found by
// VerifyRange.
type RangeVerificationError struct {
	Lo, Hi uint64
	Detail string
}

func (e *RangeVerificationError) Error() string {
	return fmt.Sprintf("range verification failed on [%d, %d]: %s", e.Lo, e.Hi, e.Detail)
}

// translateError normalizes internal errors into the public vocabulary.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, lehmer.ErrDepthExceeded) {
		return fmt.Errorf("%w: %w", ErrPhiDepthExceeded, err)
	}
	if errors.Is(err, forecast.ErrInvalidIndex) {
		return fmt.Errorf("%w: %w", ErrInvalidIndex, err)
	}

	return err
}
