package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
)

// diagramConfig describes the diagram to build: the plot size, how many
// stations to place and how.
type diagramConfig struct {
	width, height int
	stations      int
	random        bool
	seed          int64
	relax         int
}

func defaultDiagramConfig() diagramConfig {
	return diagramConfig{
		width:    1000,
		height:   1000,
		stations: 12,
	}
}

func bindDiagramFlags(fs *pflag.FlagSet, cfg *diagramConfig) {
	fs.IntVar(&cfg.width, "width", cfg.width, "plot width")
	fs.IntVar(&cfg.height, "height", cfg.height, "plot height")
	fs.IntVar(&cfg.stations, "sites", cfg.stations, "number of stations")
	fs.BoolVar(&cfg.random, "random", cfg.random, "place stations randomly instead of on a grid")
	fs.Int64Var(&cfg.seed, "seed", cfg.seed, "random seed, 0 means time based")
	fs.IntVar(&cfg.relax, "relax", cfg.relax, "Lloyd relaxation iterations")
}

func newLogger(level string) (*logger.ZapLogger, error) {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.WithLevel(lvl), logger.WithMirror(os.Stderr)), nil
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "app",
		Short:         "Диаграмма Вороного и триангуляция Делоне (Форчун)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd(&logLevel), newExportCmd(&logLevel))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}
