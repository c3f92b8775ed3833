package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmarm/internal/documents"
	"gmarm/pkg/platform/sentinel"
)

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	key := documents.RequirementKey{TypeID: 1, TypeName: "Civil"}
	reqs := &documents.Requirements{Key: key, Documents: []documents.RequiredDocument{{ID: 3, Name: "Cédula", Mandatory: true}}}

	t.Run("miss", func(t *testing.T) {
		c := NewInMemoryCache(time.Minute)
		_, err := c.FindRequirements(ctx, key)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("hit matches accent-insensitive key", func(t *testing.T) {
		c := NewInMemoryCache(time.Minute)
		require.NoError(t, c.SaveRequirements(ctx, reqs))

		got, err := c.FindRequirements(ctx, documents.RequirementKey{TypeID: 1, TypeName: "CIVIL"})
		require.NoError(t, err)
		assert.Equal(t, reqs.Documents, got.Documents)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		c := NewInMemoryCache(time.Minute)
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return base }
		require.NoError(t, c.SaveRequirements(ctx, reqs))

		c.now = func() time.Time { return base.Add(2 * time.Minute) }
		_, err := c.FindRequirements(ctx, key)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("nil is a no-op", func(t *testing.T) {
		assert.NoError(t, NewInMemoryCache(time.Minute).SaveRequirements(ctx, nil))
	})
}
