package errors

import (
	"testing"

	"arklane/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrVendorNotFound.WithDetails("VEN-123")

	assert.Equal(t, "VEN-123", detailed.Details())
	assert.Equal(t, ErrVendorNotFound.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, ErrVendorNotFound.HTTPCode(), detailed.HTTPCode())
	// The predefined error keeps its empty details.
	assert.Empty(t, ErrVendorNotFound.Details())
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrVendorNotFound.WithDetails("VEN-123")

	assert.ErrorIs(t, detailed, ErrVendorNotFound)
	assert.NotErrorIs(t, detailed, ErrInvalidRating)
}

func TestBaseError_WrapMessageKeepsChain(t *testing.T) {
	wrapped := ErrInvalidPeriod.WrapMessage("loading report")
	require.Error(t, wrapped)

	assert.ErrorIs(t, wrapped, ErrInvalidPeriod)

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "INVALID_PERIOD", appErr.ErrorCode())
}
