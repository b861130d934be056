package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(AccountNotFound, "trace-123")

	s.Equal("ACCOUNT_001", resp.Error.Code)
	s.Equal("Account not found", resp.Error.Message)
	s.Equal("trace-123", resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	resp := NewErrorResponse(ValidationGeneral, "trace-123",
		WithDetails("account_type: must be CHECKING or SAVINGS"),
		WithMessage("Custom message"))

	s.Equal("Custom message", resp.Error.Message)
	s.Equal([]string{"account_type: must be CHECKING or SAVINGS"}, resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	resp := NewValidationErrorFromList([]string{"amount is required"}, "trace-9")

	s.Equal(string(ValidationGeneral), resp.Error.Code)
	s.Equal([]string{"amount is required"}, resp.Error.Details)
	s.Equal("trace-9", resp.Error.TraceID)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternals() {
	internal := errors.New("ledger map corrupted")
	resp, err := WrapSystemError(internal, "trace-1")

	s.Equal(internal, err, "internal error is passed through for logging")
	s.Equal(string(SystemInternalError), resp.Error.Code)
	s.NotContains(resp.Error.Message, "corrupted")
}

func (s *ResponseTestSuite) TestToJSON() {
	resp := NewErrorResponse(AccountNotFound, "trace-123")

	data, err := resp.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal(resp.Error.Code, decoded.Error.Code)
	s.Equal(resp.Error.TraceID, decoded.Error.TraceID)
}

func (s *ResponseTestSuite) TestGetHTTPStatus_Mapping() {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidFormat, http.StatusBadRequest},
		{AccountInvalidNumber, http.StatusBadRequest},
		{TransactionInvalidAmount, http.StatusBadRequest},
		{AccountNotFound, http.StatusNotFound},
		{AccountInvalidType, http.StatusUnprocessableEntity},
		{AccountClosureNotAllowed, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_001"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Equal(tt.want, GetHTTPStatus(tt.code), "code %s", tt.code)
	}
}

func (s *ResponseTestSuite) TestClientServerErrorClassification() {
	notFound := NewErrorResponse(AccountNotFound, "t")
	s.True(notFound.IsClientError())
	s.False(notFound.IsServerError())

	internal := NewErrorResponse(SystemInternalError, "t")
	s.False(internal.IsClientError())
	s.True(internal.IsServerError())
}

func (s *ResponseTestSuite) TestString() {
	resp := NewErrorResponse(AccountNotFound, "trace-42")
	s.Equal("[ACCOUNT_001] Account not found (trace: trace-42)", resp.String())
}
