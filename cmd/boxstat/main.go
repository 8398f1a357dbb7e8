package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"boxstat/adapters/report"
	"boxstat/app"
	"boxstat/domain/stats/boxplot"
	"boxstat/internal"
	analysisboxplot "boxstat/internal/analysis/boxplot"
	"boxstat/internal/config"
	"boxstat/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// defaultSample is plotted when no values are given.
var defaultSample = []float64{14, 16, 18, 12, 13, 17, 15, 19, 35, 20}

// options are the flag overrides shared by every command
type options struct {
	title       string
	whiskerCoef float64
	format      string
	precision   int
	workers     int
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}

// errorLine prefixes application errors with their code so scripts can branch on it.
func errorLine(err error) string {
	if errors.IsAppError(err) {
		return fmt.Sprintf("error [%s]: %v", errors.GetCode(err), err)
	}
	return "error: " + err.Error()
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "boxstat",
		Short:         "Box-and-whisker statistics for numeric samples",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.title, "title", "", "Report title (default from BOXSTAT_TITLE)")
	flags.Float64Var(&opts.whiskerCoef, "whisker", 0, "IQR multiplier for the whisker fences (default from BOXSTAT_WHISKER_COEF, 1.5)")
	flags.StringVar(&opts.format, "format", "", "Report format: text|json (default from BOXSTAT_FORMAT)")
	flags.IntVar(&opts.precision, "precision", -1, "Decimals in the text report (default from BOXSTAT_PRECISION, 2)")
	flags.IntVar(&opts.workers, "workers", 0, "Columns computed concurrently (default from BOXSTAT_WORKERS)")

	rootCmd.AddCommand(
		newSummaryCmd(opts),
		newColumnsCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [values...]",
		Short: "Summarise one sample",
		Long: `Compute the box plot statistics of one sample and print its five-number summary.

Without values the built-in sample 14 16 18 12 13 17 15 19 35 20 is used.

Example: boxstat summary 3 1 4 1 5 9 2 6 --whisker 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := defaultSample
			if len(args) > 0 {
				parsed, err := parseValues(args)
				if err != nil {
					return err
				}
				values = parsed
			}

			svc, cfg, err := buildService(cmd, opts)
			if err != nil {
				return err
			}
			_, err = svc.SummarizeSample(cmd.Context(), cfg.Report.Title, values)
			return err
		},
	}
}

func newColumnsCmd(opts *options) *cobra.Command {
	var columnArgs []string

	cmd := &cobra.Command{
		Use:   "columns --column name=v1,v2,...",
		Short: "Summarise several named columns independently",
		Long: `Compute one box per named column. Empty, NA, NaN, null or otherwise
non-numeric entries are treated as missing; a column with no numeric value
left is reported as an error without stopping the others.

Example: boxstat columns --column height=170,182,,175 --column weight=70,NA,81`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(columnArgs) == 0 {
				return errors.InvalidInput("at least one --column is required")
			}
			columns := make([]boxplot.Column, 0, len(columnArgs))
			for _, arg := range columnArgs {
				col, err := parseColumn(arg)
				if err != nil {
					return err
				}
				columns = append(columns, col)
			}

			svc, cfg, err := buildService(cmd, opts)
			if err != nil {
				return err
			}
			_, err = svc.Summarize(cmd.Context(), app.SummaryRequest{
				Title:   cfg.Report.Title,
				YLabel:  "Values",
				Columns: columns,
			})
			return err
		},
	}

	cmd.Flags().StringArrayVar(&columnArgs, "column", nil, "Column as name=v1,v2,... (repeatable)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "boxstat", version)
		},
	}
}

// buildService merges environment configuration with flag overrides and wires
// the computer, the report writer and the service.
func buildService(cmd *cobra.Command, opts *options) (*app.BoxPlotService, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Report.Title = opts.title
	}
	if flags.Changed("whisker") {
		cfg.Stats.WhiskerCoef = opts.whiskerCoef
	}
	if flags.Changed("format") {
		cfg.Report.Format = opts.format
	}
	if flags.Changed("precision") {
		cfg.Report.Precision = opts.precision
	}
	if flags.Changed("workers") {
		cfg.Stats.Workers = opts.workers
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	logger := internal.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log.Level)

	computer, err := analysisboxplot.NewComputer(
		analysisboxplot.WithWhiskerCoef(cfg.Stats.WhiskerCoef),
		analysisboxplot.WithWorkers(cfg.Stats.Workers),
	)
	if err != nil {
		return nil, nil, err
	}

	writer := report.NewWriter(cmd.OutOrStdout(), cfg.Report.Format, cfg.Report.Precision, logger)
	return app.NewBoxPlotService(computer, writer, logger), cfg, nil
}
