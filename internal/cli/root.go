package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dienstplan/dienstplan/pkg/buildinfo"
	"github.com/dienstplan/dienstplan/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "dienstplan"

// globalOpts holds the persistent flags of the root command.
type globalOpts struct {
	verbose    bool
	configPath string
}

// cfgKey is the context key for the loaded configuration.
const cfgKey ctxKey = 1

// configFromContext returns the configuration loaded by the root command,
// or the defaults.
func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(cfgKey).(Config); ok {
		return c
	}
	return defaultConfig()
}

// Execute runs the dienstplan CLI with ctx and returns an error if any
// command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including pipeline events
//
// The logger and the configuration are attached to the context and
// accessible to all commands via loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand creates the root cobra command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var g globalOpts

	root := &cobra.Command{
		Use:          appName,
		Short:        "Dienstplan turns the weekly roster workbook into printable plans",
		Long:         `Dienstplan reads the weekly duty-roster workbook of a day-care facility, answers staffing queries and renders the employee, group and leadership plans.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if g.verbose {
				installLogHooks(logger)
			}

			cfg, err := loadConfig(g.configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), logger)
			ctx = context.WithValue(ctx, cfgKey, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file (default: dienstplan.toml or config.yaml in the working directory)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newArchiveCmd())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func newRunner(ctx context.Context) *pipeline.Runner {
	return pipeline.NewRunner(loggerFromContext(ctx))
}
