package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) WarmAdminStats(ctx context.Context) error {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("missing deadline")
	}
	return c.err
}

func TestRefreshStatsJob(t *testing.T) {
	r := &countingRefresher{}
	RefreshStatsJob(r)()
	assert.EqualValues(t, 1, r.calls.Load())

	// failures are logged, not propagated
	r.err = errors.New("db down")
	RefreshStatsJob(r)()
	assert.EqualValues(t, 2, r.calls.Load())
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	require.NoError(t, InitCronJobs(c, "@every 1h", &countingRefresher{}))
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)

	assert.Error(t, InitCronJobs(cron.New(), "not a spec", &countingRefresher{}))
}
