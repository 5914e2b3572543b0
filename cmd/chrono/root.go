package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/livinlefevreloca/chrono/internal/config"
	"github.com/livinlefevreloca/chrono/internal/db"
	"github.com/livinlefevreloca/chrono/internal/resolver"
	"github.com/livinlefevreloca/chrono/lib/chrono"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

// app holds what the subcommands share once the root pre-run has loaded config
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgFile string
	now     string

	cfg      *config.Config
	journal  *db.DB
	resolver *resolver.Resolver
	logger   *slog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// execute runs the command line args. The journal is closed on every path,
// including failed commands, which skip cobra's post-run hooks.
func (a *app) execute(args []string) (err error) {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	defer func() {
		if cerr := a.close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close journal: %w", cerr)
		}
	}()
	return cmd.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chrono",
		Short: "Resolve calendar units into concrete time spans",
		Long: `chrono resolves calendar units ("week", "friday", "june", "17:30",
"evening") into concrete half-open time spans relative to a reference instant,
stepping forward or back one unit at a time.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "path to configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&a.now, "now", "", `reference instant, e.g. "2006-08-16 14:00:00" (default: config or wall clock)`)

	rootCmd.AddCommand(
		newNextCmd(a),
		newThisCmd(a),
		newOffsetCmd(a),
		newWidthCmd(a),
		newHistoryCmd(a),
	)

	return rootCmd
}

// setup loads configuration, installs the logger and opens the journal
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if a.now != "" {
		cfg.Engine.Now = a.now
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.logger = newLogger(a.stderr, cfg.Logging)
	slog.SetDefault(a.logger)

	context, err := cfg.Engine.ContextDirection()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	rcfg := resolver.Config{Context: context}
	fixedNow, ok, err := cfg.Engine.FixedNow()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if ok {
		rcfg.FixedNow = &fixedNow
	}

	var journal resolver.Journal
	if cfg.Journal.Enabled {
		a.logger.Debug("opening journal", "driver", cfg.Journal.Driver, "dsn", cfg.Journal.DSN)
		a.journal, err = db.OpenWithConfig(cfg.Journal.Config)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		if !cfg.Journal.SkipMigrations {
			if err := a.journal.Migrate(); err != nil {
				return fmt.Errorf("failed to migrate journal: %w", err)
			}
			version, err := a.journal.CurrentVersion()
			if err != nil {
				return fmt.Errorf("failed to get journal schema version: %w", err)
			}
			a.logger.Debug("journal schema ready", "version", version)
		}
		journal = a.journal
	}

	a.resolver = resolver.New(rcfg, journal, a.logger)
	return nil
}

func (a *app) close() error {
	if a.journal == nil {
		return nil
	}
	err := a.journal.Close()
	a.journal = nil
	return err
}

func newLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseSpan builds an offset base from --begin and --end
func parseSpan(begin, end string) (*chrono.Span, error) {
	if begin == "" && end == "" {
		return nil, nil
	}
	if begin == "" || end == "" {
		return nil, fmt.Errorf("--begin and --end must be given together")
	}
	b, err := chrono.ParseInstant(begin)
	if err != nil {
		return nil, err
	}
	e, err := chrono.ParseInstant(end)
	if err != nil {
		return nil, err
	}
	s := chrono.NewSpan(b, e)
	return &s, nil
}
