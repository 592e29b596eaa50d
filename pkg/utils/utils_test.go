package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 26)
	assert.True(t, u.IsValidULID(id))
}

func TestIsValidULID(t *testing.T) {
	u := New()

	assert.False(t, u.IsValidULID(""))
	assert.False(t, u.IsValidULID("not-a-ulid"))
	assert.False(t, u.IsValidULID("01HQZX5J8N3V2K9W4T6Y7B8C9"))
	assert.True(t, u.IsValidULID("01HQZX5J8N3V2K9W4T6Y7B8C9D"))
}
