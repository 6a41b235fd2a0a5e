package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ChartPull/internal/apiclient"
	"ChartPull/internal/config"
	"ChartPull/internal/fetcher"
	"ChartPull/internal/recorder"
	"ChartPull/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init API client and fetcher
	client := apiclient.NewClient(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	f := fetcher.NewFetcher(client)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Positional args: [symbol] [interval] [range]
	query := fetcher.FromArgs(os.Args[1:])

	sched := scheduler.NewScheduler(f, rec, query, os.Stdout)

	// Single-shot unless a cron schedule is configured.
	if cfg.Schedule.Cron == "" {
		if err := sched.RunNow(); err != nil {
			log.Fatalf("[FATAL] fetch: %v", err)
		}
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	log.Printf("[INFO] watch mode: %s %s %s on %q", query.Symbol, query.Interval, query.Range, cfg.Schedule.Cron)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}
