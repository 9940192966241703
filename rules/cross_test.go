package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validate/rules"
)

func TestSameAs(t *testing.T) {
	rule := rules.SameAs("password")

	t.Run("passes when the root value matches", func(t *testing.T) {
		root := map[string]any{"password": "s3cret", "confirmPassword": "s3cret"}
		assert.NoError(t, rule("s3cret", root))
	})

	t.Run("fails on mismatch", func(t *testing.T) {
		root := map[string]any{"password": "s3cret"}
		assert.EqualError(t, rule("other", root), "must match password")
	})

	t.Run("fails when the path is missing", func(t *testing.T) {
		assert.Error(t, rule("anything", map[string]any{}))
	})

	t.Run("follows dotted paths", func(t *testing.T) {
		nested := rules.SameAs("customer.email")
		root := map[string]any{"customer": map[string]any{"email": "jo@example.com"}}
		assert.NoError(t, nested("jo@example.com", root))
	})

	t.Run("skips nil", func(t *testing.T) {
		assert.NoError(t, rule(nil, map[string]any{}))
	})
}

func TestOneOf(t *testing.T) {
	rule := rules.OneOf("retail", "wholesale")

	t.Run("passes for listed values", func(t *testing.T) {
		assert.NoError(t, rule("retail", nil))
	})

	t.Run("fails for unlisted values", func(t *testing.T) {
		assert.EqualError(t, rule("vip", nil), "must be one of: retail, wholesale")
	})

	t.Run("matches numbers across kinds", func(t *testing.T) {
		levels := rules.OneOf(1, 2, 3)
		assert.NoError(t, levels(float64(2), nil))
		assert.Error(t, levels(float64(4), nil))
	})

	t.Run("skips nil", func(t *testing.T) {
		assert.NoError(t, rule(nil, nil))
	})
}

func TestWhen(t *testing.T) {
	boom := func(_, _ any) error { return errors.New("boom") }

	t.Run("runs the check when the predicate holds", func(t *testing.T) {
		rule := rules.When(func(_, _ any) bool { return true }, boom)
		assert.EqualError(t, rule("x", nil), "boom")
	})

	t.Run("skips the check otherwise", func(t *testing.T) {
		rule := rules.When(func(_, _ any) bool { return false }, boom)
		assert.NoError(t, rule("x", nil))
	})

	t.Run("predicate sees the root", func(t *testing.T) {
		rule := rules.When(func(_, root any) bool {
			m, _ := root.(map[string]any)
			return m["plan"] == "pro"
		}, boom)
		assert.Error(t, rule("x", map[string]any{"plan": "pro"}))
		assert.NoError(t, rule("x", map[string]any{"plan": "free"}))
	})

	t.Run("tolerates nil pieces", func(t *testing.T) {
		assert.NoError(t, rules.When(nil, boom)("x", nil))
		assert.NoError(t, rules.When(func(_, _ any) bool { return true }, nil)("x", nil))
	})
}
