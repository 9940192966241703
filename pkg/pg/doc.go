// Package pg provides utilities for interacting with PostgreSQL using
// the pgx/v5 driver. It offers a thin layer around connection pooling,
// schema migrations, and health checks so a service can bootstrap a
// resilient database layer with a few lines of code.
//
// # Usage
//
//	var cfg pg.Config
//	if err := env.Parse(&cfg); err != nil {
//		panic(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		panic(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrationsFS, cfg, slog.Default()); err != nil {
//		panic(err)
//	}
//
// Connect retries with a growing back-off until the database becomes
// available. Migrate runs goose migrations, reading them from any
// fs.FS, so SQL files embed into the binary via embed.FS.
//
// # Error handling
//
// Helpers such as IsDuplicateKeyError and IsForeignKeyViolationError
// unwrap *pgconn.PgError values and make error classification trivial
// inside business logic.
package pg
