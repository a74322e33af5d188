package errutils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPError_Error(t *testing.T) {
	require.Equal(t, "Bad Request", BadRequest().Error())
	require.Equal(t, "Bad Request: code is missing", BadRequest().WithReasonStr("code is missing").Error())
}

func TestWithReason_Copies(t *testing.T) {
	base := InternalServerError()
	withReason := base.WithReasonErr(errors.New("mock error"))

	// The original error must stay untouched.
	require.Empty(t, base.Reason)
	require.Equal(t, "mock error", withReason.Reason)
	require.Equal(t, base.Status, withReason.Status)
}

func TestToHTTPError(t *testing.T) {
	// An *HTTPError passes through unchanged.
	known := BadGateway().WithReasonStr("upstream failed")
	require.Equal(t, known, ToHTTPError(known))

	// Anything else is treated as an internal server error.
	unknown := ToHTTPError(errors.New("mock error"))
	require.Equal(t, http.StatusInternalServerError, unknown.Status)
	require.Equal(t, "mock error", unknown.Reason)
}
