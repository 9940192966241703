package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validate/pkg/logger"
)

func TestError(t *testing.T) {
	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("non-nil error uses the error key", func(t *testing.T) {
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})
}

func TestErrors(t *testing.T) {
	t.Run("all nil yields empty attr", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))
	})

	t.Run("groups non-nil errors", func(t *testing.T) {
		attr := logger.Errors(errors.New("first"), nil, errors.New("third"))
		assert.Equal(t, "errors", attr.Key)
		assert.Len(t, attr.Value.Group(), 2)
	})
}

func TestNamedAttrs(t *testing.T) {
	assert.Equal(t, "component", logger.Component("engine").Key)
	assert.Equal(t, "field", logger.Field("customer.email").Key)
	assert.Equal(t, "duration", logger.Duration("1s").Key)

	assert.Equal(t, "request_id", logger.RequestID("req-1").Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(nil))

	group := logger.Group("req", slog.String("method", "POST"))
	assert.Equal(t, "req", group.Key)
	assert.Len(t, group.Value.Group(), 1)
}
