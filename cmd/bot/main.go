package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ChartGrader/internal/analyzer"
	"ChartGrader/internal/config"
	"ChartGrader/internal/notifier"
	"ChartGrader/internal/publisher"
	"ChartGrader/internal/recorder"
	"ChartGrader/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ChartGrader starting...")

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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init analyzer
	var an analyzer.Analyzer
	switch {
	case os.Getenv("ANALYZER_MOCK") == "true":
		an = &analyzer.MockAnalyzer{}
	case cfg.Analyzer.APIKey != "":
		an = analyzer.NewOpenAIAnalyzer(cfg.Analyzer.BaseURL, cfg.Analyzer.APIKey, cfg.Analyzer.Model,
			cfg.Proxy, time.Duration(cfg.Analyzer.TimeoutSeconds)*time.Second)
	}
	if an != nil {
		log.Printf("[INFO] chart analyzer: %s", an.Name())
	} else {
		log.Println("[WARN] no analyzer api key, screenshot grading disabled")
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	rec := openRecorder(ctx, cfg)
	defer rec.Close()

	// Init publisher
	var pub publisher.Publisher = publisher.NewNoopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Printf("[WARN] init kafka publisher failed, events disabled: %v", err)
		} else {
			pub = kp
		}
	}
	defer pub.Close()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, an, tn, rec, pub, cfg.Analyzer.MinConfidence)
	if err := sched.RegisterAll(cfg.Schedule.DigestCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand, sched.HandlePhoto)
	log.Println("[INFO] Telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, sending digest now")
		go sched.RunDigestNow()
	}

	log.Println("[INFO] ChartGrader is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] ChartGrader stopped")
}

// openRecorder prefers Postgres, then SQLite, and falls back to noop.
func openRecorder(ctx context.Context, cfg *config.Config) recorder.Recorder {
	if cfg.Database.PostgresURL != "" {
		pctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		pr, err := recorder.NewPostgresRecorder(pctx, cfg.Database.PostgresURL, recorder.PoolConfigFromEnv())
		if err == nil {
			return pr
		}
		log.Printf("[WARN] init postgres recorder failed: %v", err)
	}
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err == nil {
			return sr
		}
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
	}
	return recorder.NewNoopRecorder()
}
