package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	rate    float64
	rateErr error
	age     int
	ageErr  error
}

func (s stubSource) GetTaxRate(context.Context) (float64, error)         { return s.rate, s.rateErr }
func (s stubSource) GetMinimumPurchaseAge(context.Context) (int, error) { return s.age, s.ageErr }

var defaults = Defaults{TaxRate: 0.15, MinimumPurchaseAge: 25}

func TestSettings(t *testing.T) {
	t.Run("defaults before load", func(t *testing.T) {
		s := New(stubSource{}, defaults)
		assert.InDelta(t, 0.15, s.TaxRate(), 1e-9)
		assert.Equal(t, 25, s.MinimumPurchaseAge())
	})

	t.Run("backend values replace defaults", func(t *testing.T) {
		s := New(stubSource{rate: 0.12, age: 21}, defaults)
		s.Load(context.Background())
		assert.InDelta(t, 0.12, s.TaxRate(), 1e-9)
		assert.Equal(t, 21, s.MinimumPurchaseAge())
	})

	t.Run("each failure falls back independently", func(t *testing.T) {
		s := New(stubSource{rateErr: errors.New("down"), age: 30}, defaults)
		s.Load(context.Background())
		assert.InDelta(t, 0.15, s.TaxRate(), 1e-9)
		assert.Equal(t, 30, s.MinimumPurchaseAge())
	})

	t.Run("out of range values are ignored", func(t *testing.T) {
		s := New(stubSource{rate: 15, age: -1}, defaults)
		s.Load(context.Background())
		assert.InDelta(t, 0.15, s.TaxRate(), 1e-9)
		assert.Equal(t, 25, s.MinimumPurchaseAge())
	})
}
