package oddrange

import (
	"errors"
	"iter"
	"math/big"
)

// ErrOrdering is returned when the upper bound is not strictly greater than
// the lower bound. It is an expected outcome, not a failure of the program.
var ErrOrdering = errors.New("upper bound must be greater than lower bound")

var two = big.NewInt(2)

// IsOdd reports whether n has a non-zero remainder on division by two. The
// remainder takes the sign of the dividend, so -3 is odd.
func IsOdd(n *big.Int) bool {
	return n.Bit(0) != 0
}

// All returns the odd integers of [b, a] from a down to b. It returns
// ErrOrdering if a <= b. Bounds are not modified, and every yielded value is
// a fresh *big.Int the caller may keep.
func All(a, b *big.Int) (iter.Seq[*big.Int], error) {
	if a.Cmp(b) <= 0 {
		return nil, ErrOrdering
	}

	start := new(big.Int).Set(a)
	if !IsOdd(start) {
		start.Sub(start, big.NewInt(1))
	}
	lower := new(big.Int).Set(b)

	return func(yield func(*big.Int) bool) {
		for n := new(big.Int).Set(start); n.Cmp(lower) >= 0; n = new(big.Int).Sub(n, two) {
			if !yield(n) {
				return
			}
		}
	}, nil
}

// Descending collects the odd integers of [b, a] from a down to b.
func Descending(a, b *big.Int) ([]*big.Int, error) {
	seq, err := All(a, b)
	if err != nil {
		return nil, err
	}

	var odds []*big.Int
	for n := range seq {
		odds = append(odds, n)
	}
	return odds, nil
}
