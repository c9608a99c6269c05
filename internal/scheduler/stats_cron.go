package scheduler

import (
	"context"
	"time"

	"github.com/Dias221467/Birthday_Wall/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const jobTimeout = 30 * time.Second

// StartStatsCron schedules the stats report. An empty schedule disables it and returns nil.
func StartStatsCron(schedule string, reporter *jobs.StatsReporter) (*cron.Cron, error) {
	if schedule == "" {
		logrus.Info("Stats report disabled")
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := reporter.Run(ctx); err != nil {
			logrus.WithError(err).Error("Stats report failed")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logrus.WithField("schedule", schedule).Info("Stats report scheduled")
	return c, nil
}
