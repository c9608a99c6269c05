package scheduler

import (
	"context"
	"testing"

	"github.com/Dias221467/Birthday_Wall/internal/jobs"
	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticStats struct{}

func (staticStats) Collect(context.Context) (*models.Stats, error) {
	return &models.Stats{}, nil
}

func TestStartStatsCron(t *testing.T) {
	reporter := jobs.NewStatsReporter(staticStats{}, nil)

	c, err := StartStatsCron("@every 1h", reporter)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()

	c, err = StartStatsCron("", reporter)
	assert.NoError(t, err)
	assert.Nil(t, c)

	_, err = StartStatsCron("not a schedule", reporter)
	assert.Error(t, err)
}
