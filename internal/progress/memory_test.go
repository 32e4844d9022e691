package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMemorySink(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	ctx := context.Background()
	jobID := uuid.New()

	_, ok := sink.Get(ctx, jobID)
	assert.False(t, ok)

	sink.Report(ctx, jobID, Update{Stage: "Processing column data", ProcessedRows: 100, TotalRows: 200, Percent: 25})
	sink.Report(ctx, jobID, Update{Stage: "Processing column data", ProcessedRows: 200, TotalRows: 200, Percent: 50})

	update, ok := sink.Get(ctx, jobID)
	assert.True(t, ok)
	assert.Equal(t, float64(50), update.Percent)
	assert.Equal(t, int64(200), update.ProcessedRows)

	sink.Forget(ctx, jobID)
	_, ok = sink.Get(ctx, jobID)
	assert.False(t, ok)
}

func TestMemorySinkConcurrentReports(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	ctx := context.Background()
	jobID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sink.Report(ctx, jobID, Update{Percent: float64(n)})
			sink.Get(ctx, jobID)
		}(i)
	}
	wg.Wait()

	_, ok := sink.Get(ctx, jobID)
	assert.True(t, ok)
}
