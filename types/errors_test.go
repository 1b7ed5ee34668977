package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("value of {x,y}: %w", ErrUndefinedValuation)
		require.True(t, errors.Is(wrapped, ErrUndefinedValuation))
		require.False(t, errors.Is(wrapped, ErrUnsupportedOperation))

		joined := errors.Join(ErrPreconditionViolation, errors.New("additional context"))
		require.True(t, errors.Is(joined, ErrPreconditionViolation))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrUndefinedValuation,
			ErrUnsupportedOperation,
			ErrPreconditionViolation,
			ErrInvalidArgument,
			ErrUnknownProtocol,
			ErrInvalidConfig,
			ErrUnknownCriterion,
			ErrInvalidScenario,
		}

		for i, a := range allErrors {
			for j, b := range allErrors {
				if i == j {
					continue
				}
				require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	})

	t.Run("messages are non-empty", func(t *testing.T) {
		require.NotEmpty(t, ErrUndefinedValuation.Error())
		require.Contains(t, ErrPreconditionViolation.Error(), "precondition")
	})
}
