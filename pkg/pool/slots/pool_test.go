package slots

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Method: Get()
// =============================================================================

func TestPool_Get(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantCap int
	}{
		{"one", 1, 1},
		{"exact_power", 64, 64},
		{"round_up", 100, 128},
		{"odd", 3, 4},
	}

	p := New[int](0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := p.Get(tt.n)
			require.NoError(t, err)
			assert.Len(t, buf, tt.n)
			assert.Equal(t, tt.wantCap, cap(buf))
			for i, v := range buf {
				if v != 0 {
					t.Fatalf("buf[%d] = %d; want 0", i, v)
				}
			}
		})
	}
}

func TestPool_Get_Errors(t *testing.T) {
	p := New[int](16)

	_, err := p.Get(0)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, err = p.Get(-3)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, err = p.Get(17)
	assert.True(t, errors.Is(err, ErrTooLarge))

	buf, err := p.Get(16)
	require.NoError(t, err)
	assert.Len(t, buf, 16)
	assert.Equal(t, uint64(1), p.Gets())
}

func TestPool_Get_BeyondPooled(t *testing.T) {
	p := New[byte](0)
	buf, err := p.Get(MaxPooled + 1)
	require.NoError(t, err)
	assert.Len(t, buf, MaxPooled+1)
	assert.Equal(t, 2*MaxPooled, cap(buf))
}

// =============================================================================
// Method: Put()
// =============================================================================

func TestPool_Put_ZeroesSlots(t *testing.T) {
	p := New[int](0)
	buf, err := p.Get(8)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = i + 1
	}
	p.Put(buf)
	assert.Equal(t, uint64(1), p.Puts())

	// sync.Pool may or may not hand the same slice back; either way it must be clean.
	again, err := p.Get(8)
	require.NoError(t, err)
	for i, v := range again {
		assert.Zero(t, v, "slot %d", i)
	}
}

func TestPool_Put_IgnoresForeign(t *testing.T) {
	p := New[int](0)
	p.Put(nil)
	p.Put(make([]int, 3))
	assert.Equal(t, uint64(0), p.Puts())
}

func TestPool_Limit(t *testing.T) {
	assert.Equal(t, 1024, New[int](1024).Limit())
	assert.Greater(t, New[int](-1).Limit(), MaxPooled)
}

func TestBucket(t *testing.T) {
	for i := 0; i < Steps; i++ {
		if got := BucketIndex(BucketSize(i)); got != i {
			t.Errorf("BucketIndex(BucketSize(%d)) = %d", i, got)
		}
	}
}
