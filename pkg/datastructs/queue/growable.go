package queue

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/utils"
)

var _ Queue = (*Growable)(nil)

// Stats counts growth work done over the lifetime of a queue.
type Stats struct {
	Grows int // number of doubling steps
	Moved int // element slots copied while growing
}

// Growable is an unbounded FIFO queue over a circular buffer.
//
// Live elements occupy size slots starting at head and wrapping modulo
// capacity; tail is always (head+size) mod capacity. A full queue doubles its
// storage on the next Enqueue, so capacity stays InitialCapacity * 2^k.
type Growable struct {
	buf      []Value // len(buf) == capacity
	capacity int
	head     int // oldest element
	tail     int // next write position
	size     int

	initial int
	limit   int
	freed   bool
	stats   Stats

	alloc  Allocator
	logger *zap.Logger
}

// New creates an empty queue with cfg.InitialCapacity slots.
func New(cfg Config) (*Growable, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	buf, err := cfg.Allocator.Alloc(cfg.InitialCapacity)
	if err != nil {
		return nil, errors.Wrapf(ErrAllocation, "allocate %d slots: %v", cfg.InitialCapacity, err)
	}
	if len(buf) < cfg.InitialCapacity {
		return nil, errors.Wrapf(ErrAllocation, "allocator returned %d slots, want %d", len(buf), cfg.InitialCapacity)
	}

	return &Growable{
		buf:      buf[:cfg.InitialCapacity],
		capacity: cfg.InitialCapacity,
		initial:  cfg.InitialCapacity,
		limit:    cfg.MaxCapacity,
		alloc:    cfg.Allocator,
		logger:   cfg.Logger,
	}, nil
}

// Enqueue appends v as the newest element, growing storage first if full.
// On error the queue is left exactly as it was.
func (q *Growable) Enqueue(v Value) error {
	if q.freed {
		return ErrFreed
	}
	if q.size == q.capacity {
		if err := q.grow(); err != nil {
			return err
		}
	}

	q.buf[q.tail] = v
	q.tail++
	if q.tail == q.capacity {
		q.tail = 0
	}
	q.size++
	return nil
}

// Dequeue removes and returns the oldest element.
func (q *Growable) Dequeue() (Value, error) {
	if q.size == 0 {
		return 0, ErrEmptyQueue
	}

	v := q.buf[q.head]
	q.buf[q.head] = 0
	q.head++
	if q.head == q.capacity {
		q.head = 0
	}
	q.size--
	return v, nil
}

// Peek returns the oldest element without removing it.
func (q *Growable) Peek() (Value, error) {
	if q.size == 0 {
		return 0, ErrEmptyQueue
	}
	return q.buf[q.head], nil
}

// Len returns the number of live elements.
func (q *Growable) Len() int {
	return q.size
}

// Cap returns the number of allocated slots.
func (q *Growable) Cap() int {
	return q.capacity
}

// IsEmpty reports whether the queue holds no elements.
func (q *Growable) IsEmpty() bool {
	return q.size == 0
}

// Stats returns the growth counters.
func (q *Growable) Stats() Stats {
	return q.stats
}

// Values returns a copy of the live elements, oldest first.
func (q *Growable) Values() []Value {
	if q.size == 0 {
		return nil
	}

	out := make([]Value, 0, q.size)
	if q.head < q.tail {
		return append(out, q.buf[q.head:q.tail]...)
	}

	// Wrap-around case: [head, capacity) then [0, tail)
	out = append(out, q.buf[q.head:q.capacity]...)
	return append(out, q.buf[:q.tail]...)
}

// Reset drops all elements and keeps the current storage.
func (q *Growable) Reset() {
	clear(q.buf)
	q.head = 0
	q.tail = 0
	q.size = 0
}

// Free returns the storage to the allocator. The queue must not be used
// afterwards except for Len, Cap and Dequeue, which report an empty queue.
func (q *Growable) Free() {
	if q.freed {
		return
	}
	q.alloc.Free(q.buf)
	q.buf = nil
	q.capacity = 0
	q.head = 0
	q.tail = 0
	q.size = 0
	q.freed = true
}

// grow doubles the storage of a full queue.
//
// A full queue has head == tail, so its contents are two contiguous runs of
// the old buffer: B = [head, oldCap) holding the oldest elements and
// A = [0, head) holding the newest. A keeps its offsets; B moves to the top
// of the enlarged buffer and head follows it. tail does not change.
func (q *Growable) grow() error {
	oldCap := q.capacity
	if !utils.CanDouble(oldCap) {
		return errors.Wrapf(ErrAllocation, "capacity %d cannot double", oldCap)
	}
	newCap := 2 * oldCap
	if q.limit > 0 && newCap > q.limit {
		q.logger.Warn("queue growth refused",
			zap.Int("capacity", oldCap),
			zap.Int("max_capacity", q.limit),
		)
		return errors.Wrapf(ErrAllocation, "capacity %d exceeds limit %d", newCap, q.limit)
	}

	ntocopy := oldCap - q.head
	newHead := newCap - ntocopy
	inPlace := cap(q.buf) >= newCap
	moved := ntocopy

	if inPlace {
		buf := q.buf[:newCap]
		copy(buf[newHead:], buf[q.head:oldCap])
		// newHead >= oldCap, so the old B run is fully vacated.
		clear(buf[q.head:oldCap])
		q.buf = buf
	} else {
		buf, err := q.alloc.Alloc(newCap)
		if err != nil {
			q.logger.Warn("queue growth failed",
				zap.Int("capacity", oldCap),
				zap.Int("new_capacity", newCap),
				zap.Error(err),
			)
			return errors.Wrapf(ErrAllocation, "allocate %d slots: %v", newCap, err)
		}
		if len(buf) < newCap {
			return errors.Wrapf(ErrAllocation, "allocator returned %d slots, want %d", len(buf), newCap)
		}
		buf = buf[:newCap]
		copy(buf, q.buf[:q.head])
		copy(buf[newHead:], q.buf[q.head:oldCap])
		q.alloc.Free(q.buf)
		q.buf = buf
		moved = oldCap
	}

	q.head = newHead
	q.capacity = newCap
	q.stats.Grows++
	q.stats.Moved += moved

	q.logger.Debug("queue grown",
		zap.Int("old_capacity", oldCap),
		zap.Int("new_capacity", newCap),
		zap.Int("moved", moved),
		zap.Bool("in_place", inPlace),
	)
	return nil
}
