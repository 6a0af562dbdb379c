package helper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var sweepScheduler gocron.Scheduler

// StartPendingSweeper runs sweep every interval. Stale pending rows otherwise stay
// in storage until overwritten, so this is opt-in.
func StartPendingSweeper(interval time.Duration, sweep func(ctx context.Context) (int, error)) error {
	if interval <= 0 {
		return nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			removed, err := sweep(ctx)
			if err != nil {
				log.Printf("[CRON] pending sweep failed: %v", err)
				return
			}
			if removed > 0 {
				log.Printf("[CRON] released %d expired pending holds", removed)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return err
	}

	sweepScheduler = s
	s.Start()
	log.Printf("Pending sweeper started (every %s)", interval)
	return nil
}

func StopPendingSweeper() {
	if sweepScheduler != nil {
		if err := sweepScheduler.Shutdown(); err != nil {
			log.Printf("Pending sweeper shutdown: %v", err)
		}
		sweepScheduler = nil
	}
}
