// Package queue provides a single-owner FIFO queue over a circular buffer
// that doubles its storage when full.
//
// The queue is not synchronized. Callers sharing one instance between
// goroutines must guard every call with their own lock.
package queue

// Value is the element type stored by the queue.
type Value = int

// Queue is the FIFO contract implemented by Growable.
type Queue interface {
	// Enqueue appends v as the newest element.
	// Returns ErrAllocation if storage had to grow and could not.
	Enqueue(v Value) error

	// Dequeue removes and returns the oldest element.
	// Returns ErrEmptyQueue if there is nothing to remove.
	Dequeue() (Value, error)

	// Len returns the number of live elements.
	Len() int

	// Cap returns the number of allocated slots.
	Cap() int
}
