package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsFindsWrappedAppError(t *testing.T) {
	base := NewNotFoundError("Database not found", "db-1", nil)
	wrapped := fmt.Errorf("query events: %w", base)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "db-1", appErr.Resource)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsUnauthorized(wrapped))
}

func TestNewUpstreamErrorDetails(t *testing.T) {
	err := NewUpstreamError("Failed to fetch", fmt.Errorf("connection reset"))
	assert.Equal(t, "connection reset", err.Details)

	err = NewUpstreamError("Failed to fetch", nil)
	assert.Equal(t, "Unknown error", err.Details)
}

func TestErrorString(t *testing.T) {
	err := NewUnauthorizedError("Unauthorized", "share the database", fmt.Errorf("401"))
	assert.Equal(t, "UNAUTHORIZED: Unauthorized (401)", err.Error())
	assert.Equal(t, "CONFIG_MISSING: missing", NewConfigMissingError("missing", "").Error())
	assert.True(t, IsConfigMissing(NewConfigMissingError("missing", "")))
}
