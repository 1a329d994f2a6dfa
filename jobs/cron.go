package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StatsRefresher recomputes the admin dashboard totals
type StatsRefresher interface {
	WarmAdminStats(ctx context.Context) error
}

const refreshTimeout = 30 * time.Second

// InitCronJobs schedules the stats warm-up on spec and starts the scheduler
func InitCronJobs(c *cron.Cron, spec string, stats StatsRefresher) error {
	if _, err := c.AddFunc(spec, RefreshStatsJob(stats)); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// RefreshStatsJob returns the job body, exposed so it can run outside the scheduler
func RefreshStatsJob(stats StatsRefresher) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := stats.WarmAdminStats(ctx); err != nil {
			log.Printf("admin stats refresh failed: %v", err)
		}
	}
}
