package jobs

import (
	"context"
	"fmt"

	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/sirupsen/logrus"
)

// StatsCollector produces a snapshot of the wall.
type StatsCollector interface {
	Collect(ctx context.Context) (*models.Stats, error)
}

type StatsReporter struct {
	Stats StatsCollector
	Log   logrus.FieldLogger
}

// NewStatsReporter creates a new instance of StatsReporter
func NewStatsReporter(stats StatsCollector, log logrus.FieldLogger) *StatsReporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StatsReporter{Stats: stats, Log: log}
}

// Run logs the current wish, like and slide totals.
func (r *StatsReporter) Run(ctx context.Context) error {
	stats, err := r.Stats.Collect(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect stats: %w", err)
	}

	r.Log.WithFields(logrus.Fields{
		"wishes": stats.Wishes,
		"likes":  stats.Likes,
		"slides": stats.Slides,
	}).Info("Birthday wall stats")
	return nil
}
