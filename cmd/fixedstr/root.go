package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fixedstr/core/config"
	"github.com/dmitrymomot/fixedstr/core/logger"
	"github.com/dmitrymomot/fixedstr/pkg/codegen"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// appConfig is read from the environment and an optional .env file.
type appConfig struct {
	Env        string `env:"FIXEDSTR_ENV" envDefault:"development"`
	LogLevel   string `env:"FIXEDSTR_LOG_LEVEL" envDefault:"warn"`
	ImportPath string `env:"FIXEDSTR_IMPORT_PATH" envDefault:"github.com/dmitrymomot/fixedstr"`
	MaxSlots   int    `env:"FIXEDSTR_MAX_SLOTS" envDefault:"100"`
}

// app carries state shared by subcommands once the root pre-run completes.
type app struct {
	cfg     appConfig
	log     *slog.Logger
	noColor bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fixedstr",
		Short: "Fixed-capacity string tooling",
		Long: `fixedstr generates Go source for fixed-capacity strings and evaluates
search and comparison queries against them.

Configuration is read from FIXEDSTR_* environment variables and .env.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newGenCmd(a))
	root.AddCommand(newStorageCmd(a))
	root.AddCommand(newQueryCmd(a))

	for _, sub := range root.Commands() {
		a.logFailures(sub)
	}
	return root
}

// logFailures wraps the RunE of cmd so a failed run is logged before the
// error reaches main.
func (a *app) logFailures(cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	action := cmd.Name()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			a.log.Debug("command failed", logger.Action(action), logger.Error(err))
		}
		return err
	}
}

func (a *app) init(stderr io.Writer) error {
	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, "fixedstr"),
		logger.WithOutput(stderr),
		logger.WithLevel(level),
	)

	if a.noColor {
		color.NoColor = true
	}

	a.log.Debug("fixedstr started",
		logger.Version(version),
		logger.Component("cli"),
		logger.Slots(a.cfg.MaxSlots),
	)
	return nil
}

func (a *app) generator(maxSlots int) *codegen.Generator {
	return codegen.New(
		codegen.WithLogger(a.log),
		codegen.WithImportPath(a.cfg.ImportPath),
		codegen.WithMaxSlots(maxSlots),
	)
}
