package error_test

import (
	"fmt"
	"strings"
	"testing"

	errors "single-linked-list/internal/platform/error"

	"github.com/stretchr/testify/require"
)

func TestValueConstructionError_Unwraps(t *testing.T) {
	cause := fmt.Errorf("out of tokens")
	err := errors.NewValueConstructionError(cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, errors.ValueConstructionErrorCode, err.ErrorCode)
	require.True(t, strings.HasPrefix(err.Error(), "value construction failed: out of tokens"))
	require.Contains(t, err.Error(), "Stack trace:")
}

func TestHasCode(t *testing.T) {
	violation := errors.NewContractViolationError("EraseAfter at end")

	tests := []struct {
		name string
		err  error
		code errors.Code
		want bool
	}{
		{name: "matching code", err: violation, code: errors.ContractViolationErrorCode, want: true},
		{name: "other code", err: violation, code: errors.ValueConstructionErrorCode, want: false},
		{name: "wrapped", err: fmt.Errorf("outer: %w", violation), code: errors.ContractViolationErrorCode, want: true},
		{name: "plain error", err: fmt.Errorf("plain"), code: errors.ContractViolationErrorCode, want: false},
		{name: "nil", err: nil, code: errors.ContractViolationErrorCode, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, errors.HasCode(tt.err, tt.code))
		})
	}
}

func TestCode_String(t *testing.T) {
	require.Equal(t, "contract violation", errors.ContractViolationErrorCode.String())
	require.Equal(t, "value construction", errors.ValueConstructionErrorCode.String())
	require.Equal(t, "code(42)", errors.Code(42).String())
}
