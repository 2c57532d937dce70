package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yourneighborhoodchef/airmon/internal/client"
	"github.com/yourneighborhoodchef/airmon/internal/config"
	"github.com/yourneighborhoodchef/airmon/internal/logging"
	"github.com/yourneighborhoodchef/airmon/internal/monitor"
	"github.com/yourneighborhoodchef/airmon/internal/notify"
	"github.com/yourneighborhoodchef/airmon/internal/stats"
	"github.com/yourneighborhoodchef/airmon/internal/term"
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-h" || arg == "--help" {
			fmt.Println("Usage: airmon [config.yaml]")
			fmt.Println("  config.yaml: optional config file; without one the built-in defaults apply")
			fmt.Println("Environment: AIRMON_WEBHOOK_URL, AIRMON_PROXY (a .env file is honored)")
			return
		}
	}

	// Missing .env is fine; it only carries the webhook URL and proxy.
	_ = godotenv.Load()

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{
		Level: cfg.Logging.Level,
		File: logging.FileConfig{
			Enabled:    cfg.Logging.File.Enabled,
			Path:       cfg.Logging.File.Path,
			MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
			MaxBackups: cfg.Logging.File.MaxBackups,
		},
	})

	st := stats.New()
	presenter := term.NewPresenter()
	_ = presenter.Clear()
	reporter := term.NewReporter(presenter, st)
	reporter.Refresh()

	httpClient, err := client.New(cfg.Proxy)
	if err != nil {
		log.Error("Creating HTTP client: %v", err)
		os.Exit(1)
	}

	fan := notify.NewFanout(log)
	if cfg.Notify.Desktop {
		fan.Register(notify.NewDesktop())
	}
	if cfg.Notify.WebhookURL != "" {
		fan.Register(notify.NewDiscord(cfg.Notify.WebhookURL, httpClient, st))
	}

	checker := client.NewChecker(cfg.Product, httpClient, st, log, fan, reporter)
	monitor.New(checker, log, cfg.Interval.Duration).Run()
}
