package attrs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	id := uuid.MustParse("7f1c4bb1-6a0f-4d57-9f54-9ad1a4a8b2c1")
	list := []any{"client_id", id, "reason", "violencia", 42, "skip", "dangling"}

	assert.Equal(t, id.String(), ExtractString(list, "client_id"))
	assert.Equal(t, "violencia", ExtractString(list, "reason"))
	assert.Empty(t, ExtractString(list, "missing"))
	assert.Empty(t, ExtractString(list, "dangling"))
}

func TestFirstString(t *testing.T) {
	list := []any{"weapon_id", "w-1", "assignment_id", "a-1"}
	assert.Equal(t, "a-1", FirstString(list, "client_id", "assignment_id", "weapon_id"))
	assert.Empty(t, FirstString(list, "client_id"))
}
