package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validate/rules"
)

func TestNotEmpty(t *testing.T) {
	rule := rules.NotEmpty()

	t.Run("fails for nil", func(t *testing.T) {
		assert.EqualError(t, rule(nil, nil), "must not be empty")
	})

	t.Run("fails for an empty array", func(t *testing.T) {
		assert.Error(t, rule([]any{}, nil))
	})

	t.Run("passes for a populated array", func(t *testing.T) {
		assert.NoError(t, rule([]any{"a"}, nil))
	})

	t.Run("counts typed slices", func(t *testing.T) {
		assert.NoError(t, rule([]int{1}, nil))
		assert.Error(t, rule([]int{}, nil))
	})

	t.Run("rejects non-collections", func(t *testing.T) {
		assert.EqualError(t, rule("abc", nil), "must be an array")
	})
}

func TestMinItems(t *testing.T) {
	rule := rules.MinItems(2)

	t.Run("passes at the boundary", func(t *testing.T) {
		assert.NoError(t, rule([]any{1, 2}, nil))
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		assert.EqualError(t, rule([]any{1}, nil), "must have at least 2 items")
	})

	t.Run("skips nil", func(t *testing.T) {
		assert.NoError(t, rule(nil, nil))
	})
}

func TestMaxItems(t *testing.T) {
	rule := rules.MaxItems(2)

	t.Run("passes at the boundary", func(t *testing.T) {
		assert.NoError(t, rule([]any{1, 2}, nil))
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		assert.EqualError(t, rule([]any{1, 2, 3}, nil), "must have at most 2 items")
	})
}

func TestDistinct(t *testing.T) {
	rule := rules.Distinct("levels", func(element any) any {
		m, _ := element.(map[string]any)
		return m["level"]
	})

	t.Run("passes when keys differ", func(t *testing.T) {
		value := []any{
			map[string]any{"level": "retail"},
			map[string]any{"level": "wholesale"},
		}
		assert.NoError(t, rule(value, nil))
	})

	t.Run("fails on duplicate keys", func(t *testing.T) {
		value := []any{
			map[string]any{"level": "retail"},
			map[string]any{"level": "retail"},
		}
		assert.EqualError(t, rule(value, nil), "must not contain duplicate levels")
	})

	t.Run("supports composite keys", func(t *testing.T) {
		type key struct{ level, currency any }
		composite := rules.Distinct("level-currency pairs", func(element any) any {
			m, _ := element.(map[string]any)
			return key{m["level"], m["currency"]}
		})
		value := []any{
			map[string]any{"level": "retail", "currency": "EUR"},
			map[string]any{"level": "retail", "currency": "USD"},
		}
		assert.NoError(t, composite(value, nil))

		value = append(value, map[string]any{"level": "retail", "currency": "EUR"})
		assert.Error(t, composite(value, nil))
	})

	t.Run("skips nil", func(t *testing.T) {
		assert.NoError(t, rule(nil, nil))
	})
}
