package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Makepad-fr/eggventory/internal/cli"
	"github.com/Makepad-fr/eggventory/internal/config"
	"github.com/Makepad-fr/eggventory/internal/ui"
)

func main() {
	// .env is optional
	_ = godotenv.Load()
	cfg := config.Load()

	// Root flags (apply to every subcommand) override the environment.
	file := flag.String("file", cfg.DataFile, "inventory file (default eggventory.txt in the working directory)")
	theme := flag.String("theme", cfg.Theme, "output theme: classic, neon or mono")
	noColor := flag.Bool("no-color", cfg.NoColor, "disable colored output")
	group := flag.Bool("group", false, "group list output by stock type")
	flag.Parse()

	cfg.DataFile, cfg.Theme, cfg.NoColor = *file, *theme, *noColor
	if err := cfg.Validate(); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		ui.Fail("logger: " + err.Error())
		os.Exit(1)
	}

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, cfg.NoColor)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(context.Background(), flag.Args(), cli.Options{
		DataFile: cfg.DataFile,
		Group:    *group,
		Logger:   logger,
	})
	_ = logger.Sync()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

// newLogger writes human-readable diagnostics to stderr, away from the
// command output on stdout.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	return zc.Build()
}
