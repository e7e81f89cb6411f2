package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Messages(t *testing.T) {
	assert.Equal(t, "Trello API error: 404 - board not found", NewServiceError(404, "board not found").Error())
	assert.Equal(t, "missing credentials", NewConfigurationError("missing credentials").Error())
	assert.Equal(t, "days must be a non-negative integer", NewValidationError("days must be a non-negative integer").Error())

	wrapped := WrapServiceError("call trello", errors.New("connection refused"))
	assert.Equal(t, "call trello: connection refused", wrapped.Error())
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("fetch board: %w", NewServiceError(500, "boom"))

	assert.True(t, IsKind(err, KindService))
	assert.False(t, IsKind(err, KindConfiguration))
	assert.False(t, IsKind(errors.New("plain"), KindService))
}

func TestLabelDisplayName(t *testing.T) {
	assert.Equal(t, "Bug", Label{Name: "Bug", Color: "red"}.DisplayName())
	assert.Equal(t, "green", Label{Color: "green"}.DisplayName())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "service", KindService.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
