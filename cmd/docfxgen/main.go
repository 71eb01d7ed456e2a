package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docfxgen/internal/config"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"docfxgen.yaml" env:"DOCFXGEN_CONFIG"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Events        string `short:"e" help:"Discovery events file" default:"events.yaml" env:"DOCFXGEN_EVENTS"`
		Output        string `short:"o" help:"Output directory for generated documents" env:"DOCFXGEN_OUTPUT"`
		Format        string `short:"f" help:"Output format (yaml or json)" env:"DOCFXGEN_FORMAT"`
		MetricsListen string `help:"Expose Prometheus metrics on this address during the build" env:"DOCFXGEN_METRICS_LISTEN"`
	} `cmd:"" help:"Build DocFX metadata documents from a discovery events file"`

	Watch struct {
		Events string `short:"e" help:"Discovery events file" default:"events.yaml" env:"DOCFXGEN_EVENTS"`
		Output string `short:"o" help:"Output directory for generated documents" env:"DOCFXGEN_OUTPUT"`
		Format string `short:"f" help:"Output format (yaml or json)" env:"DOCFXGEN_FORMAT"`
	} `cmd:"" help:"Rebuild whenever the events file changes"`
}

func main() {
	// Local overrides for the kong env bindings; absence is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg, err := loadConfig(CLI.Build.Output, CLI.Build.Format, CLI.Build.MetricsListen)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runBuild(cfg, CLI.Build.Events); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "watch":
		cfg, err := loadConfig(CLI.Watch.Output, CLI.Watch.Format, "")
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runWatch(cfg, CLI.Watch.Events); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}

// loadConfig merges the configuration file with command-line overrides.
func loadConfig(output, format, metricsListen string) (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = config.Format(format)
	}
	if metricsListen != "" {
		cfg.MetricsListen = metricsListen
	}
	return cfg, nil
}
