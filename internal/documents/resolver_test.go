package documents

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"gmarm/internal/clienttype"
	dErrors "gmarm/pkg/domain-errors"
	"gmarm/pkg/platform/sentinel"
)

type countingSource struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (s *countingSource) GetRequiredDocuments(_ context.Context, typeID int, status clienttype.ServiceStatus) ([]RequiredDocument, error) {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	docs := []RequiredDocument{{ID: 1, Name: "Cédula", Mandatory: true}}
	if status == clienttype.StatusActive {
		docs = append(docs, RequiredDocument{ID: 9, Name: "Credencial ISSFA", Mandatory: true})
	}
	return docs, nil
}

// mapCache is a minimal Cache for resolver tests.
type mapCache struct {
	mu      sync.Mutex
	entries map[string]*Requirements
}

func newMapCache() *mapCache { return &mapCache{entries: map[string]*Requirements{}} }

func (c *mapCache) FindRequirements(_ context.Context, key RequirementKey) (*Requirements, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.entries[key.String()]; ok {
		return r, nil
	}
	return nil, sentinel.ErrNotFound
}

func (c *mapCache) SaveRequirements(_ context.Context, reqs *Requirements) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[reqs.Key.String()] = reqs
	return nil
}

type ResolverSuite struct {
	suite.Suite
	source   *countingSource
	resolver *Resolver
	civil    RequirementKey
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.source = &countingSource{}
	s.resolver = NewResolver(s.source, newMapCache())
	s.civil = RequirementKey{TypeID: 1, TypeName: "Civil"}
}

func (s *ResolverSuite) TestCacheAside() {
	ctx := context.Background()
	first, err := s.resolver.GetRequirements(ctx, s.civil)
	s.Require().NoError(err)
	second, err := s.resolver.GetRequirements(ctx, RequirementKey{TypeID: 1, TypeName: "civil"})
	s.Require().NoError(err)

	s.Equal(first.Documents, second.Documents)
	s.Equal(int32(1), s.source.calls.Load())
}

func (s *ResolverSuite) TestStatusChangesKeyForUniformed() {
	ctx := context.Background()
	active := RequirementKey{TypeID: 2, TypeName: "Militar Fuerza Terrestre", ServiceStatus: clienttype.StatusActive}
	reqs, err := s.resolver.GetRequirements(ctx, active)
	s.Require().NoError(err)
	s.Len(reqs.Documents, 2)

	_, err = s.resolver.GetRequirements(ctx, s.civil)
	s.Require().NoError(err)
	s.Equal(int32(2), s.source.calls.Load())
}

func (s *ResolverSuite) TestConcurrentMissesShareOneFetch() {
	s.source.release = make(chan struct{})
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*Requirements, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := s.resolver.GetRequirements(ctx, s.civil)
			s.NoError(err)
			results[i] = r
		}()
	}
	s.Eventually(func() bool { return s.source.calls.Load() == 1 }, timeout, tick)
	close(s.source.release)
	wg.Wait()

	s.Equal(int32(1), s.source.calls.Load())
	for _, r := range results {
		s.Require().NotNil(r)
		s.Len(r.Documents, 1)
	}
}

func (s *ResolverSuite) TestBackendErrorPropagates() {
	s.Run("coded errors pass through", func() {
		s.source.err = dErrors.NewPersistence(503, "Servicio no disponible", nil)
		_, err := s.resolver.GetRequirements(context.Background(), s.civil)
		s.True(dErrors.HasCode(err, dErrors.CodePersistence))
	})

	s.Run("plain errors are wrapped", func() {
		s.source.err = errors.New("boom")
		_, err := s.resolver.GetRequirements(context.Background(), s.civil)
		s.Require().Error(err)
		s.Contains(err.Error(), "boom")
	})
}

func (s *ResolverSuite) TestWithoutCache() {
	r := NewResolver(s.source, nil)
	_, err := r.GetRequirements(context.Background(), s.civil)
	s.Require().NoError(err)
	_, err = r.GetRequirements(context.Background(), s.civil)
	s.Require().NoError(err)
	s.Equal(int32(2), s.source.calls.Load())
}

// blockingSource waits for release or for the fetch ctx to end.
type blockingSource struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *blockingSource) GetRequiredDocuments(ctx context.Context, _ int, _ clienttype.ServiceStatus) ([]RequiredDocument, error) {
	s.calls.Add(1)
	select {
	case <-s.release:
		return []RequiredDocument{{ID: 1, Name: "Cédula", Mandatory: true}}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *ResolverSuite) TestCancelledCallerDoesNotFailSharedFetch() {
	source := &blockingSource{release: make(chan struct{})}
	resolver := NewResolver(source, newMapCache())

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := resolver.GetRequirements(firstCtx, s.civil)
		firstErr <- err
	}()
	s.Eventually(func() bool { return source.calls.Load() == 1 }, timeout, tick)

	type outcome struct {
		reqs *Requirements
		err  error
	}
	second := make(chan outcome, 1)
	go func() {
		r, err := resolver.GetRequirements(context.Background(), s.civil)
		second <- outcome{r, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	s.ErrorIs(<-firstErr, context.Canceled)

	close(source.release)
	got := <-second
	s.Require().NoError(got.err)
	s.Len(got.reqs.Documents, 1)
}
