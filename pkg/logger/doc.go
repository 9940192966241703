// Package logger provides a context-aware wrapper around Go's slog
// package with functional options for configuration, helper attribute
// constructors, and transparent injection of values stored in
// context.Context.
//
// New builds a *slog.Logger from a set of Option functions: pick an
// output format (text or json), set the minimum level, attach static
// attributes, and register ContextExtractor callbacks that pull
// request-scoped values such as a request id into every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithService("validation-api", cfg.Env),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "request validated",
//		logger.Component("handler"),
//		logger.Duration(time.Since(start)),
//	)
//
// # Error handling
//
// Error and Errors produce attributes only for non-nil errors, so
// callers can attach them unconditionally:
//
//	log.Info("lookup finished", logger.Error(err))
package logger
