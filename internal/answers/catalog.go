package answers

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"gmarm/internal/clienttype"
	id "gmarm/pkg/domain"
)

// Question is one entry of the questionnaire shown for a client type.
type Question struct {
	ID       id.QuestionID `json:"id"`
	Text     string        `json:"pregunta"`
	Order    int           `json:"orden"`
	Required bool          `json:"obligatoria"`
}

// QuestionSource fetches the questionnaire for a type from the backend.
type QuestionSource interface {
	GetQuestions(ctx context.Context, typeID int) ([]Question, error)
}

// Catalog caches questionnaires per effective client type. Concurrent
// misses for one type share a single fetch.
type Catalog struct {
	source QuestionSource
	group  singleflight.Group

	mu      sync.RWMutex
	entries map[int][]Question
}

func NewCatalog(source QuestionSource) *Catalog {
	return &Catalog{source: source, entries: make(map[int][]Question)}
}

// Questions returns the questionnaire for the effective type.
func (c *Catalog) Questions(ctx context.Context, effective clienttype.Config) ([]Question, error) {
	if qs, ok := c.lookup(effective.TypeID); ok {
		return qs, nil
	}

	ch := c.group.DoChan(fmt.Sprint(effective.TypeID), func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx), effective.TypeID)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Question), nil
	}
}

func (c *Catalog) fetch(ctx context.Context, typeID int) ([]Question, error) {
	if qs, ok := c.lookup(typeID); ok {
		return qs, nil
	}
	qs, err := c.source.GetQuestions(ctx, typeID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.entries[typeID] = qs
	c.mu.Unlock()
	return qs, nil
}

func (c *Catalog) lookup(typeID int) ([]Question, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	qs, ok := c.entries[typeID]
	return qs, ok
}
