// Package logger is a thin factory around Go's slog package: functional
// options for configuration, an env-tagged Config for deployments, and
// helper attribute constructors that keep attribute naming consistent
// across the codebase.
//
// The single factory – New – creates a *slog.Logger configured by Option
// functions:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Tag the stream with a service name
//
// # Usage
//
//	import "github.com/dmitrymomot/invoicekit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelInfo),
//	    logger.WithService("billing-api"),
//	)
//	log.Info("server started", slog.String("addr", ":8080"))
//
// Deployments configure the logger through the environment instead:
//
//	var cfg logger.Config // LOG_LEVEL, LOG_FORMAT
//	config.MustLoad(&cfg)
//	log := logger.NewFromConfig(cfg, logger.WithService("billing-api"))
//	logger.SetAsDefault(log)
//
// Helper constructors such as Error, UserID and SessionID live in attr.go;
// they guard against nil values so call sites stay unconditional:
//
//	log.Error("session record not persisted",
//	    logger.SessionID(sid),
//	    logger.Error(err),
//	)
//
// # Defaults
//
// Without options New returns a JSON logger at INFO writing to stdout,
// which is the production-safe choice: structured output for aggregation
// pipelines and a level that keeps noise down.
package logger
