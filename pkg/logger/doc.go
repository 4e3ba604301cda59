// Package logger builds structured slog loggers for the portfolio services.
//
// Loggers write JSON (or text) to stdout and can fan out to Sentry when a DSN is
// configured. Context extractors inject request-scoped attributes such as the
// request ID into every record:
//
//	log := logger.NewFromConfig(cfg, os.Stdout, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "contact message sent", slog.String("submission_id", id))
//
// Serverless invocations should call Flush before returning so buffered Sentry
// events are not lost when the runtime freezes the process.
package logger
