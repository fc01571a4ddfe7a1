//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationResult_Constructors(t *testing.T) {
	idle := IdleResult()
	assert.Equal(t, StatusIdle, idle.Status)
	assert.Empty(t, idle.Content)
	assert.Empty(t, idle.ErrorMessage)

	pending := PendingResult("abc")
	assert.True(t, pending.IsPending())
	assert.Empty(t, pending.Content)
	assert.Empty(t, pending.ErrorMessage)

	ok := SucceededResult("abc", "# Advert")
	assert.Equal(t, StatusSuccess, ok.Status)
	assert.Equal(t, "# Advert", ok.Content)
	assert.Empty(t, ok.ErrorMessage)

	failed := FailedResult("abc", "try again")
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Empty(t, failed.Content)
	assert.Equal(t, "try again", failed.ErrorMessage)
}

func TestGenerationResult_FailedOmitsContent(t *testing.T) {
	data, err := json.Marshal(FailedResult("id-1", "boom"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "failed", raw["status"])
	assert.Equal(t, "boom", raw["error_message"])
	_, hasContent := raw["content"]
	assert.False(t, hasContent)
}
