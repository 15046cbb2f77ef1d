package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("api.page_size", "must be at least 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "api.page_size", validationErr.Field)
	require.Contains(t, err.Error(), "api.page_size: must be at least 1")
}

func TestFetchErrorWrapsTransportFailure(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewFetchError("https://pokeapi.co/api/v2/pokemon/1", underlying)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Zero(t, fetchErr.StatusCode)
	require.True(t, fetchErr.Retryable())
	require.True(t, stdErrors.Is(err, underlying))
}

func TestFetchErrorStatusClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status    int
		retryable bool
		notFound  bool
	}{
		{status: http.StatusNotFound, notFound: true},
		{status: http.StatusBadRequest},
		{status: http.StatusTooManyRequests, retryable: true},
		{status: http.StatusBadGateway, retryable: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			t.Parallel()

			var fetchErr *FetchError
			require.ErrorAs(t, NewStatusError("/pokemon/0", tc.status), &fetchErr)
			require.Equal(t, tc.retryable, fetchErr.Retryable())
			require.Equal(t, tc.notFound, fetchErr.NotFound())
			require.Contains(t, fetchErr.Error(), fmt.Sprintf("status %d", tc.status))
		})
	}
}
