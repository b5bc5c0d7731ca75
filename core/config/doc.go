// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/fixedstr/core/config"
//
//	type GeneratorConfig struct {
//		ImportPath string `env:"FIXEDSTR_IMPORT_PATH" envDefault:"github.com/dmitrymomot/fixedstr"`
//		MaxSlots   int    `env:"FIXEDSTR_MAX_SLOTS" envDefault:"100"`
//		LogLevel   string `env:"FIXEDSTR_LOG_LEVEL" envDefault:"info"`
//	}
//
//	func main() {
//		var cfg GeneratorConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 GeneratorConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 GeneratorConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type QueryConfig struct {
//		Color bool `env:"FIXEDSTR_COLOR" envDefault:"true"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&GeneratorConfig{})
//	config.MustLoad(&QueryConfig{})
//
// Tests that change the environment between loads call Reset first.
package config
