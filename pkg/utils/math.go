package utils

import (
	"math"
	"math/bits"
)

const (
	bitSize = bits.UintSize

	// MaxPowerOfTwo is the largest power of two representable by int.
	MaxPowerOfTwo = 1 << (bitSize - 2)
)

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the next-highest power-of-two.
// Values below 1 round up to 1.
func CeilToPowerOfTwo(n int) int {
	if n > MaxPowerOfTwo {
		panic("argument is too large")
	}
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Log2 returns floor(log2(n)) for n > 0, and -1 otherwise.
func Log2(n int) int {
	if n <= 0 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}

// IsPowerOfTwoMultiple reports whether n == base * 2^k for some k >= 0.
func IsPowerOfTwoMultiple(n, base int) bool {
	if base <= 0 || n < base || n%base != 0 {
		return false
	}
	return IsPowerOfTwo(n / base)
}

// CanDouble reports whether n can be doubled without overflowing int.
func CanDouble(n int) bool {
	return n > 0 && n <= math.MaxInt/2
}
