package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"ChartGrader/internal/analyzer"
	"ChartGrader/internal/notifier"
	"ChartGrader/internal/publisher"
	"ChartGrader/internal/recorder"

	"github.com/robfig/cron/v3"
)

// DigestWindow is how far back the scheduled digest looks.
const DigestWindow = 24 * time.Hour

// Sender delivers outbound messages. *notifier.TelegramNotifier satisfies it.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs the cron digest and answers chat requests.
type Scheduler struct {
	Cron          *cron.Cron
	Analyzer      analyzer.Analyzer
	Notifier      Sender
	Recorder      recorder.Recorder
	Publisher     publisher.Publisher
	MinConfidence float64
	Ctx           context.Context
}

// NewScheduler creates a new Scheduler. an may be nil when no vision model is configured.
func NewScheduler(ctx context.Context, an analyzer.Analyzer, tn Sender, rec recorder.Recorder, pub publisher.Publisher, minConfidence float64) *Scheduler {
	return &Scheduler{
		Cron:          cron.New(cron.WithSeconds()),
		Analyzer:      an,
		Notifier:      tn,
		Recorder:      rec,
		Publisher:     pub,
		MinConfidence: minConfidence,
		Ctx:           ctx,
	}
}

// RegisterAll registers the periodic digest.
func (s *Scheduler) RegisterAll(digestCron string) error {
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunDigestNow sends the digest immediately (for RUN_ON_START).
func (s *Scheduler) RunDigestNow() {
	s.digestTask()
}

func (s *Scheduler) digestTask() {
	log.Println("[INFO] running digest task")
	msg, err := s.digest()
	if err != nil {
		log.Printf("[ERROR] digest: %v", err)
		s.trySend(fmt.Sprintf("❌ Digest failed: %v", err))
		return
	}
	s.trySend(msg)
}

func (s *Scheduler) digest() (string, error) {
	summary, err := s.Recorder.Summarize(s.Ctx, time.Now().Add(-DigestWindow))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return notifier.FormatDigest(summary), nil
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
