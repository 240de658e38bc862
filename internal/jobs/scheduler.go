package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"unistay/api/internal/service"
)

// Scheduler keeps the cached platform statistics warm.
type Scheduler struct {
	cron  *cron.Cron
	stats *service.StatsService
	log   zerolog.Logger
}

func NewScheduler(stats *service.StatsService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds()),
		stats: stats,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if s.stats == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 */5 * * * *", s.refreshStats); err != nil {
		return err
	}

	s.cron.Start()

	// Warm the cache right away so the dashboards don't show zeroes for the
	// first five minutes after a deploy.
	go s.refreshStats()

	return nil
}

// Stop halts scheduling and waits briefly for a running refresh to finish.
func (s *Scheduler) Stop() {
	select {
	case <-s.cron.Stop().Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) refreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.stats.Refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("refresh platform stats failed")
	}
}
