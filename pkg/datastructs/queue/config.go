package queue

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/pool/slots"
)

// DefaultInitialCapacity is used when Config.InitialCapacity is zero.
const DefaultInitialCapacity = 64

// Config holds configuration for a Growable queue.
type Config struct {
	// InitialCapacity is the slot count allocated by New.
	// Zero selects DefaultInitialCapacity.
	InitialCapacity int

	// MaxCapacity caps growth. Zero leaves growth bounded only by the int range.
	MaxCapacity int

	// Allocator supplies storage. Nil selects the shared slot pool.
	Allocator Allocator

	// Logger receives growth events. Nil disables logging.
	Logger *zap.Logger
}

// Allocator obtains and releases slot storage.
// Alloc must return a slice of length n or an error.
type Allocator interface {
	Alloc(n int) ([]Value, error)
	Free(buf []Value)
}

var defaultSlots = slots.New[Value](0)

// PoolAllocator serves storage from a size-classed slot pool.
type PoolAllocator struct {
	pool *slots.Pool[Value]
}

// NewPoolAllocator returns an allocator over the process-wide slot pool.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{pool: defaultSlots}
}

// Alloc implements Allocator.
func (a *PoolAllocator) Alloc(n int) ([]Value, error) {
	return a.pool.Get(n)
}

// Free implements Allocator.
func (a *PoolAllocator) Free(buf []Value) {
	a.pool.Put(buf)
}

func (cfg Config) withDefaults() (Config, error) {
	if cfg.InitialCapacity < 0 {
		return cfg, errInvalidCapacity("initial capacity %d is negative", cfg.InitialCapacity)
	}
	if cfg.InitialCapacity == 0 {
		cfg.InitialCapacity = DefaultInitialCapacity
	}
	if cfg.MaxCapacity < 0 {
		return cfg, errInvalidCapacity("max capacity %d is negative", cfg.MaxCapacity)
	}
	if cfg.MaxCapacity > 0 && cfg.MaxCapacity < cfg.InitialCapacity {
		return cfg, errInvalidCapacity("max capacity %d is below initial capacity %d", cfg.MaxCapacity, cfg.InitialCapacity)
	}
	if cfg.Allocator == nil {
		cfg.Allocator = NewPoolAllocator()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg, nil
}
