package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want string
	}{
		{"account not found", AccountNotFound, "Account not found"},
		{"closure not allowed", AccountClosureNotAllowed, "Account balance must be zero to close"},
		{"invalid amount", TransactionInvalidAmount, "Invalid transaction amount"},
		{"validation", ValidationGeneral, "Validation failed"},
		{"rate limit", SystemRateLimitExceeded, "Rate limit exceeded. Please try again later"},
		{"unknown code falls back", ErrorCode("NOPE_001"), "An error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorMessage(tt.code))
		})
	}
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(AccountNotFound))
	assert.True(t, IsValidErrorCode(SystemInternalError))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_001")))
	assert.False(t, IsValidErrorCode(ErrorCode("")))
}
