package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/uwiki/internal/build"
	"git.home.luguber.info/inful/uwiki/internal/config"
	ferrors "git.home.luguber.info/inful/uwiki/internal/foundation/errors"
	"git.home.luguber.info/inful/uwiki/internal/logfields"
	"git.home.luguber.info/inful/uwiki/internal/metrics"
	"git.home.luguber.info/inful/uwiki/internal/version"
)

const usageLine = "Usage: uwiki <directory> [title]"

// CLI is the uwiki command line.
type CLI struct {
	Directory string `arg:"" optional:"" help:"Directory to convert"`
	Title     string `arg:"" optional:"" help:"Document title (defaults to the directory name)"`

	Config      string           `short:"c" help:"Configuration file path (default: ./uwiki.yaml when present)"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	OutputDir   string           `name:"output-dir" short:"o" help:"Directory for generated files (default: working directory)"`
	NoMarkdown  bool             `name:"no-markdown" help:"Do not write the flattened markdown document"`
	MetricsFile string           `name:"metrics-file" help:"Write run metrics in Prometheus text format to this file"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("uwiki"),
		kong.Description("Convert a directory tree of text pages into a single HTML and markdown document."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		code := 0
		ferrors.NewCLIErrorAdapter(false, newLogger(config.Default(), false, stderr)).
			WithOutput(stderr).
			WithExit(func(n int) { code = n }).
			HandleError(ferrors.InternalError("cannot build command line parser").WithCause(err).Build())
		return code
	}

	if _, err := parser.Parse(args); err != nil {
		if exitCode >= 0 {
			return exitCode
		}
		_, _ = fmt.Fprintf(stderr, "uwiki: %v\n", err)
		_, _ = fmt.Fprintln(stdout, usageLine)
		return 1
	}
	if exitCode >= 0 {
		return exitCode
	}

	if cli.Directory == "" {
		_, _ = fmt.Fprintln(stdout, usageLine)
		return 1
	}
	return cli.execute(ctx, stderr)
}

func (c *CLI) execute(ctx context.Context, stderr io.Writer) int {
	code := 0
	exit := func(n int) { code = n }

	cfg, err := config.Load(c.Config)
	if err != nil {
		logger := newLogger(config.Default(), c.Verbose, stderr)
		ferrors.NewCLIErrorAdapter(c.Verbose, logger).WithOutput(stderr).WithExit(exit).HandleError(err)
		return code
	}
	if c.NoMarkdown {
		cfg.Outputs.Markdown = false
	}

	logger := newLogger(cfg, c.Verbose, stderr)
	slog.SetDefault(logger)
	adapter := ferrors.NewCLIErrorAdapter(c.Verbose, logger).WithOutput(stderr).WithExit(exit)

	pipeline := build.NewPipeline().WithLogger(logger)
	var registry *prometheus.Registry
	if c.MetricsFile != "" {
		registry = prometheus.NewRegistry()
		pipeline.WithRecorder(metrics.NewPrometheusRecorder(registry))
	}

	_, runErr := pipeline.Run(ctx, build.Request{
		Config:    cfg,
		Directory: c.Directory,
		Title:     c.Title,
		OutputDir: c.OutputDir,
	})

	if registry != nil {
		if err := metrics.WriteTextfile(registry, c.MetricsFile); err != nil {
			logger.Warn("Failed to write metrics file", logfields.File(c.MetricsFile), logfields.Error(err))
		}
	}

	adapter.HandleError(runErr)
	return code
}

// newLogger builds the stderr logger. --verbose wins over the configured level.
func newLogger(cfg *config.Config, verbose bool, w io.Writer) *slog.Logger {
	level := config.NormalizeLogLevel(cfg.LogLevel).Slog()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if config.NormalizeLogFormat(cfg.LogFormat) == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
