package db_models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampCreatedAt_StrictlyIncreasing(t *testing.T) {
	prev := stampCreatedAt(0)
	for i := 0; i < 1000; i++ {
		next := stampCreatedAt(0)
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestStampCreatedAt_ExplicitMovesClockForward(t *testing.T) {
	ahead := stampCreatedAt(0) + 60_000
	assert.Equal(t, ahead, stampCreatedAt(ahead))
	assert.Greater(t, stampCreatedAt(0), ahead)

	// an old explicit stamp is kept and does not rewind the clock
	assert.EqualValues(t, 1000, stampCreatedAt(1000))
	assert.Greater(t, stampCreatedAt(0), ahead)
}

func TestStampCreatedAt_Concurrent(t *testing.T) {
	const workers, perWorker = 8, 200
	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				stamp := stampCreatedAt(0)
				mu.Lock()
				seen[stamp] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}
