package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("benchplot failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "benchplot [basename]",
		Short: "Box plot of benchmark timings",
		Long: `benchplot reads <basename>.csv, one "method,seconds,seconds,..." line per
benchmarked method, and writes <basename>.png: a box plot per method with
every run drawn on top of it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("basename", args[0])
			}

			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			initLogger(cfg.Debug)

			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default ./benchplot.yaml)")
	bindFlags(cmd.Flags(), v)

	return cmd
}

// run loads the results, renders them, writes the outputs and, when enabled,
// shows the chart.
func run(cfg Config) error {

	in := cfg.InputPath()
	rows, err := Load(in)
	if err != nil {
		return err
	}
	slog.Info("loaded results", "path", in, "methods", len(rows))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Debug("jitter", "seed", seed)

	chart, err := Render(rows, rand.New(rand.NewSource(seed)))
	if err != nil {
		return errors.Wrap(err, "render")
	}

	out := cfg.OutputPath("png")
	if err := Save(chart, out, cfg.DPI); err != nil {
		return err
	}
	slog.Info("saved plot", "path", out, "dpi", cfg.DPI)

	for _, format := range cfg.Formats {
		out := cfg.OutputPath(format)
		if err := SaveAs(chart, out, format); err != nil {
			return err
		}
		slog.Info("saved plot", "path", out)
	}

	if cfg.Show {
		return Display(chart)
	}
	return nil
}
