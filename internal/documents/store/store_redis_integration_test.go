//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	"gmarm/internal/documents/store"
	"gmarm/pkg/platform/sentinel"
	"gmarm/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	cache *store.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupTest() {
	client := containers.NewRedisClient(s.T())
	s.cache = store.NewRedisCache(client, time.Minute)
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()
	key := documents.RequirementKey{TypeID: 2, TypeName: "Militar Fuerza Terrestre", ServiceStatus: clienttype.StatusActive}

	_, err := s.cache.FindRequirements(ctx, key)
	s.ErrorIs(err, sentinel.ErrNotFound)

	reqs := &documents.Requirements{Key: key, Documents: []documents.RequiredDocument{
		{ID: 1, Name: "Cédula", Mandatory: true},
		{ID: 9, Name: "Credencial ISSFA", Mandatory: true},
	}}
	s.Require().NoError(s.cache.SaveRequirements(ctx, reqs))

	found, err := s.cache.FindRequirements(ctx, key)
	s.Require().NoError(err)
	s.Equal(reqs.Documents, found.Documents)
	s.Equal(key, found.Key)
}
