package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/dashview/internal/config"
)

// RootOptions holds global flags for all commands. Flags left unset fall
// back to the DASHVIEW_* environment (see package config).
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	PageSize int
	Seed     string
	Database string

	config config.Config
	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the dashview CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dashview",
		Short: "dashview - pharmacy dashboard view engine",
		Long: `Filter, sort, paginate and summarise a pharmacy collection.

The collection comes from the --db snapshot when it holds records, else from
the --seed file, else from the built-in demo data.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.PageSize, "page-size", 5, "records per page (env DASHVIEW_PAGE_SIZE)")
	cmd.PersistentFlags().StringVar(&opts.Seed, "seed", "", "seed file (.yaml, .yml, .json) (env DASHVIEW_SEED)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite snapshot (env DASHVIEW_DB)")

	cmd.AddCommand(NewViewCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// resolve loads the environment and fills every flag the user did not set.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}
	o.config = cfg

	flags := cmd.Flags()
	if !flags.Changed("page-size") {
		o.PageSize = cfg.PageSize
	}
	if !flags.Changed("seed") {
		o.Seed = cfg.SeedFile
	}
	if !flags.Changed("db") {
		o.Database = cfg.Database
	}

	level := cfg.Level()
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// Logger returns the command logger, or a discarding one before resolve.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.logger
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
