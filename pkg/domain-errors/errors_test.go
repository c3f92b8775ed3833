package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("matches outermost code", func(t *testing.T) {
		err := New(CodeValidation, "email is invalid")
		assert.True(t, HasCode(err, CodeValidation))
		assert.False(t, HasCode(err, CodeInternal))
	})

	t.Run("matches code through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("create client: %w", New(CodeDuplicateIdentification, "taken"))
		assert.True(t, HasCode(err, CodeDuplicateIdentification))
	})

	t.Run("matches inner code of nested domain errors", func(t *testing.T) {
		inner := NewPersistence(500, "boom", nil)
		err := Wrap(inner, CodeInternal, "failed to save")
		assert.True(t, HasCode(err, CodeInternal))
		assert.True(t, HasCode(err, CodePersistence))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("plain"), CodeInternal))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "price too low", MessageOf(Wrap(errors.New("x"), CodePriceBelowFloor, "price too low")))
	assert.Equal(t, "cedula ya registrada", MessageOf(NewPersistence(422, "cedula ya registrada", nil)))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
	assert.Equal(t, "", MessageOf(nil))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodePersistence, CodeOf(NewPersistence(503, "down", nil)))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}
