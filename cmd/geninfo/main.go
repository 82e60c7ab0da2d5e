// # cmd/geninfo/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"geninfo/internal/app"
	"geninfo/internal/config"
)

var (
	configPath = flag.String("config", "./geninfo.toml", "Path to config file")
	root       = flag.String("root", "", "Repository root (overrides config)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("geninfo v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) || *configPath != "./geninfo.toml" {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		// No config file is fine; the defaults describe the conventional
		// repo layout.
		cfg = config.Default()
	}
	if *root != "" {
		cfg.Root = *root
	}
	if flag.NArg() > 0 {
		cfg.Root = flag.Arg(0)
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to load manifest", "error", err)
		os.Exit(1)
	}

	report, err := a.Run()
	if err != nil {
		slog.Error("run aborted", "error", err)
		os.Exit(1)
	}

	printSummary(report)
	if !report.Pass {
		os.Exit(1)
	}
}

func printSummary(report *app.Report) {
	fmt.Printf("Processed %d cog packages (run %s)\n", report.Packages, report.RunID)
	fmt.Printf("Rewrote %d file(s)\n", len(report.Rewritten))
	if report.Pass {
		fmt.Println("All checks passed.")
		return
	}
	fmt.Printf("FAILED: %d finding(s), %d manifest order warning(s)\n",
		len(report.Findings), len(report.OrderWarnings))
}
