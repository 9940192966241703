package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validate/rules"
)

func TestRequired(t *testing.T) {
	rule := rules.Required()

	t.Run("fails for nil", func(t *testing.T) {
		assert.EqualError(t, rule(nil, nil), "field is required")
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.Error(t, rule("   ", nil))
	})

	t.Run("fails for empty slice", func(t *testing.T) {
		assert.Error(t, rule([]any{}, nil))
	})

	t.Run("fails for empty map", func(t *testing.T) {
		assert.Error(t, rule(map[string]any{}, nil))
	})

	t.Run("passes for non-empty string", func(t *testing.T) {
		assert.NoError(t, rule("jo", nil))
	})

	t.Run("passes for zero number", func(t *testing.T) {
		assert.NoError(t, rule(0, nil))
	})

	t.Run("passes for false", func(t *testing.T) {
		assert.NoError(t, rule(false, nil))
	})

	t.Run("passes for non-empty slice", func(t *testing.T) {
		assert.NoError(t, rule([]string{"a"}, nil))
	})
}

func TestMinLen(t *testing.T) {
	rule := rules.MinLen(3)

	t.Run("passes at the boundary", func(t *testing.T) {
		assert.NoError(t, rule("abc", nil))
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		assert.EqualError(t, rule("ab", nil), "must be at least 3 characters long")
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.Error(t, rule("", nil))
	})

	t.Run("skips nil", func(t *testing.T) {
		assert.NoError(t, rule(nil, nil))
	})

	t.Run("rejects non-strings", func(t *testing.T) {
		assert.EqualError(t, rule(42, nil), "must be a string")
	})

	t.Run("accepts named string types", func(t *testing.T) {
		type sku string
		assert.NoError(t, rule(sku("abc"), nil))
	})
}

func TestMaxLen(t *testing.T) {
	rule := rules.MaxLen(5)

	t.Run("passes at the boundary", func(t *testing.T) {
		assert.NoError(t, rule("abcde", nil))
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		assert.EqualError(t, rule("abcdef", nil), "must be at most 5 characters long")
	})

	t.Run("skips nil", func(t *testing.T) {
		assert.NoError(t, rule(nil, nil))
	})
}

func TestLen(t *testing.T) {
	rule := rules.Len(2)

	t.Run("passes for exact length", func(t *testing.T) {
		assert.NoError(t, rule("ab", nil))
	})

	t.Run("fails for other lengths", func(t *testing.T) {
		assert.EqualError(t, rule("abc", nil), "must be exactly 2 characters long")
		assert.Error(t, rule("a", nil))
	})
}
