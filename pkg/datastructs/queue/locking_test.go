package queue

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// lockedQueue is how callers share a Growable: every call under one mutex.
type lockedQueue struct {
	mu sync.Mutex
	q  *Growable
}

func (l *lockedQueue) Enqueue(v Value) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Enqueue(v)
}

func (l *lockedQueue) Dequeue() (Value, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Dequeue()
}

func TestExternalLocking(t *testing.T) {
	const (
		producers = 4
		perWorker = 2000
	)

	lq := &lockedQueue{q: newQueue(t, 1)}

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				if err := lq.Enqueue(p*perWorker + i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	got := drain(t, lq.q)
	require.Len(t, got, producers*perWorker)

	// Per-producer order must survive interleaving and every growth step.
	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}
	for _, v := range got {
		p := v / perWorker
		assert.Greater(t, v, last[p], "producer %d out of order", p)
		last[p] = v
	}

	sort.Ints(got)
	assert.Equal(t, seq(0, producers*perWorker), got)
}
