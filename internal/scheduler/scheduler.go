package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily digest job on a cron spec (UTC).
type Scheduler struct {
	cron       *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
	digestFunc func(ctx context.Context) error
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetDigestFunction sets the function invoked on each trigger.
func (s *Scheduler) SetDigestFunction(f func(ctx context.Context) error) {
	s.digestFunc = f
}

// Start registers the job under the given cron spec and starts the
// scheduler. An empty spec leaves the scheduler idle.
func (s *Scheduler) Start(spec string) error {
	if s.digestFunc == nil || spec == "" {
		log.Println("⚠️ Digest function or cron spec not set, scheduler will stay idle")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		log.Printf("🕘 Triggered daily digest generation (%s)", spec)
		if err := s.digestFunc(s.ctx); err != nil {
			log.Printf("❌ Daily digest generation failed: %v", err)
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("📅 Scheduler started - daily digest on spec %q (UTC)", spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
