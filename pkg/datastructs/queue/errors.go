package queue

import "github.com/pkg/errors"

var (
	// ErrEmptyQueue is returned by Dequeue and Peek when the queue holds no elements.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrAllocation is returned when backing storage cannot be obtained or enlarged.
	ErrAllocation = errors.New("queue storage allocation failed")

	// ErrInvalidCapacity is returned by New for a negative or inconsistent capacity.
	ErrInvalidCapacity = errors.New("invalid queue capacity")

	// ErrFreed is returned by Enqueue after Free released the storage.
	ErrFreed = errors.New("queue storage released")
)

func errInvalidCapacity(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidCapacity, format, args...)
}
