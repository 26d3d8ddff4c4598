// Package cli implements the guuid command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guuid/v2"
	"github.com/Lzww0608/guuid/v2/internal/config"
	"github.com/Lzww0608/guuid/v2/internal/logging"
)

// app carries state shared by every subcommand once the root pre-run has
// resolved configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
	gen    *guuid.Generator
}

// NewRoot constructs the root command and registers every subcommand.
func NewRoot() *cobra.Command {
	a := &app{gen: guuid.NewGenerator()}

	root := &cobra.Command{
		Use:           "guuid",
		Short:         "Generate, inspect and order UUIDs",
		Long:          "guuid generates random, sequential and name-based UUIDs and orders them the way SQL Server, MongoDB or a byte-wise index would.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text|json")

	root.AddCommand(newGenerateCommand(a))
	root.AddCommand(newParseCommand(a))
	root.AddCommand(newSortCommand(a))
	root.AddCommand(newVerifyOrderCommand(a))
	return root
}

// load applies file, then environment, then flags.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	config.FromEnv(&cfg)
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
		Output: cmd.ErrOrStderr(),
	})
	a.logger.Debug("configuration loaded", "path", a.configPath, "comparator", cfg.Comparator, "style", cfg.Style)
	return nil
}

// comparator returns the --comparator flag when set, else the configured one.
func (a *app) comparator(flag string) (guuid.Comparator, error) {
	if flag != "" {
		return guuid.ParseComparator(flag)
	}
	return a.cfg.ComparatorValue()
}

// style returns the --style flag when set, else the configured one.
func (a *app) style(flag string) (guuid.Style, error) {
	if flag != "" {
		return guuid.ParseStyle(flag)
	}
	return a.cfg.StyleValue()
}
