package ids

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/machgame/internal/model"
)

func TestSequenceStartsAtOne(t *testing.T) {
	seq := New()

	assert.Equal(t, model.ID(1), seq.Next())
	assert.Equal(t, model.ID(2), seq.Next())
	assert.Equal(t, model.ID(3), seq.Next())
}

func TestSequenceConcurrentUse(t *testing.T) {
	seq := New()

	const (
		workers   = 16
		perWorker = 1000
	)

	results := make([][]model.ID, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			got := make([]model.ID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				got = append(got, seq.Next())
			}
			results[w] = got
		}(w)
	}
	wg.Wait()

	seen := make(map[model.ID]bool, workers*perWorker)
	for _, got := range results {
		for i, id := range got {
			require.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
			if i > 0 {
				// Values seen by a single goroutine must still increase
				require.Greater(t, id, got[i-1])
			}
		}
	}

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, model.ID(workers*perWorker+1), seq.Next())
}
