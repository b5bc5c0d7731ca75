// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers environment-specific configurations and a set of pre-built attributes for the
// events the fixedstr tooling reports: manifest loading, literal generation and queries.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Environment-specific configurations (development, staging, production)
//   - Attribute helpers for common logging patterns
//   - Support for both JSON and text output formats
//   - Type-safe attribute creation with nil safety
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/fixedstr/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("fixedstr"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("literal generated",
//		logger.Component("codegen"),
//		logger.Literal("Greeting"),
//		logger.Width("16"),
//		logger.Slots(6),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level
//	devLogger := logger.New(logger.WithDevelopment("fixedstr"))
//
//	// Production: JSON format, info level
//	prodLogger := logger.New(logger.WithProduction("fixedstr"))
//
//	// Picked from configuration
//	log := logger.New(logger.WithEnvironment(cfg.Env, "fixedstr"))
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, so they are safe
// to pass unconditionally:
//
//	log.Error("manifest rejected",
//		logger.Error(err),
//		logger.File(path),
//		logger.Action("load_manifest"),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
// Use Nop where a logger is required but output is not wanted.
package logger
