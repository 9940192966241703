package pg_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validate/pkg/pg"
)

func TestErrorClassifiers(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		assert.True(t, pg.IsNotFoundError(pgx.ErrNoRows))
		assert.True(t, pg.IsNotFoundError(fmt.Errorf("query user: %w", pgx.ErrNoRows)))
		assert.False(t, pg.IsNotFoundError(errors.New("other")))
		assert.False(t, pg.IsNotFoundError(nil))
	})

	t.Run("duplicate key", func(t *testing.T) {
		dup := &pgconn.PgError{Code: "23505"}
		assert.True(t, pg.IsDuplicateKeyError(dup))
		assert.True(t, pg.IsDuplicateKeyError(fmt.Errorf("insert user: %w", dup)))
		assert.False(t, pg.IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
		assert.False(t, pg.IsDuplicateKeyError(nil))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		fk := &pgconn.PgError{Code: "23503"}
		assert.True(t, pg.IsForeignKeyViolationError(fk))
		assert.False(t, pg.IsForeignKeyViolationError(&pgconn.PgError{Code: "23505"}))
		assert.False(t, pg.IsForeignKeyViolationError(nil))
	})
}
