// Package slots pools fixed-length element slices in power-of-two size classes.
//
// It backs the storage of growable containers: a container asks for n slots,
// receives a slice of length n whose capacity is the enclosing size class, and
// hands it back when it moves to a larger block.
package slots

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-queue/pkg/utils"
)

const (
	// Steps is the number of pooled size classes: 1 slot up to 16M slots.
	Steps = 25

	// MaxPooled is the largest slice capacity kept in a bucket.
	MaxPooled = 1 << (Steps - 1)
)

var (
	// ErrInvalidSize is returned when a non-positive slot count is requested.
	ErrInvalidSize = errors.New("slots: size must be positive")

	// ErrTooLarge is returned when a request exceeds the pool limit.
	ErrTooLarge = errors.New("slots: size exceeds limit")
)

// Pool hands out []T of exact length backed by power-of-two capacity.
type Pool[T any] struct {
	limit   int
	gets    atomic.Uint64
	puts    atomic.Uint64
	buckets [Steps]sync.Pool
}

// New creates a Pool that refuses requests above limit slots.
// A limit <= 0 only bounds requests by the int range.
func New[T any](limit int) *Pool[T] {
	if limit <= 0 || limit > utils.MaxPowerOfTwo {
		limit = utils.MaxPowerOfTwo
	}

	p := &Pool[T]{limit: limit}
	for i := range p.buckets {
		size := 1 << i
		p.buckets[i].New = func() any {
			return make([]T, size)
		}
	}
	return p
}

// Get returns a zeroed slice of length n.
func (p *Pool[T]) Get(n int) ([]T, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "requested %d", n)
	}
	if n > p.limit {
		return nil, errors.Wrapf(ErrTooLarge, "requested %d, limit %d", n, p.limit)
	}

	p.gets.Add(1)
	size := utils.CeilToPowerOfTwo(n)
	if size > MaxPooled {
		return make([]T, n, size), nil
	}

	buf := p.buckets[BucketIndex(size)].Get().([]T)
	return buf[:n], nil
}

// Put zeroes buf and returns it to its size class.
// Slices that were not produced by Get are dropped.
func (p *Pool[T]) Put(buf []T) {
	size := cap(buf)
	if size == 0 || size > MaxPooled || !utils.IsPowerOfTwo(size) {
		return
	}

	buf = buf[:size]
	clear(buf)
	p.puts.Add(1)
	p.buckets[BucketIndex(size)].Put(buf)
}

// Limit returns the largest slot count Get accepts.
func (p *Pool[T]) Limit() int {
	return p.limit
}

// Gets returns how many slices were handed out.
func (p *Pool[T]) Gets() uint64 {
	return p.gets.Load()
}

// Puts returns how many slices were returned.
func (p *Pool[T]) Puts() uint64 {
	return p.puts.Load()
}

// BucketIndex returns the size class index for a power-of-two size.
func BucketIndex(size int) int {
	return utils.Log2(size)
}

// BucketSize returns the capacity of bucket i.
func BucketSize(i int) int {
	return 1 << i
}
