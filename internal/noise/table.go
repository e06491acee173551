// Package noise implements classic 2D Perlin noise and fractal Brownian motion
// over an explicitly constructed permutation table.
package noise

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// TableSize is the number of distinct entries in a permutation table.
const TableSize = 256

// ErrInvalidPermutation reports a permutation that is not a bijection of
// 0..TableSize-1.
var ErrInvalidPermutation = errors.New("noise: invalid permutation")

// ShuffleMode selects how the permutation table is shuffled.
type ShuffleMode int

const (
	// ShuffleUniform is the textbook Fisher-Yates shuffle drawing from [0, e].
	ShuffleUniform ShuffleMode = iota
	// ShuffleLegacy draws from [0, e-1]. This is Sattolo's algorithm: every
	// table it produces is a single cycle with no fixed points.
	ShuffleLegacy
)

// String returns the config name of the mode.
func (m ShuffleMode) String() string {
	switch m {
	case ShuffleUniform:
		return "uniform"
	case ShuffleLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("ShuffleMode(%d)", int(m))
	}
}

// ParseShuffleMode converts a config name into a ShuffleMode.
func ParseShuffleMode(s string) (ShuffleMode, error) {
	switch s {
	case "uniform", "":
		return ShuffleUniform, nil
	case "legacy":
		return ShuffleLegacy, nil
	default:
		return ShuffleUniform, fmt.Errorf("noise: unknown shuffle mode %q", s)
	}
}

// Table is a permutation of 0..255 stored twice so corner lookups never need
// to wrap. It is read-only once constructed.
type Table struct {
	p [2 * TableSize]uint8
}

// NewTable shuffles the identity permutation with r using the given mode.
func NewTable(r *rand.Rand, mode ShuffleMode) *Table {
	var perm [TableSize]uint8
	for i := range perm {
		perm[i] = uint8(i)
	}
	for e := TableSize - 1; e > 0; e-- {
		var j int
		if mode == ShuffleLegacy {
			j = r.IntN(e)
		} else {
			j = r.IntN(e + 1)
		}
		perm[e], perm[j] = perm[j], perm[e]
	}
	return fromArray(perm)
}

// IdentityTable returns the unshuffled table, useful for reproducible output.
func IdentityTable() *Table {
	var perm [TableSize]uint8
	for i := range perm {
		perm[i] = uint8(i)
	}
	return fromArray(perm)
}

// TableFrom builds a table from an explicit permutation of 0..255.
func TableFrom(perm []int) (*Table, error) {
	if len(perm) != TableSize {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrInvalidPermutation, len(perm), TableSize)
	}
	var seen [TableSize]bool
	var arr [TableSize]uint8
	for i, v := range perm {
		if v < 0 || v >= TableSize {
			return nil, fmt.Errorf("%w: entry %d is %d", ErrInvalidPermutation, i, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: value %d repeated", ErrInvalidPermutation, v)
		}
		seen[v] = true
		arr[i] = uint8(v)
	}
	return fromArray(arr), nil
}

func fromArray(perm [TableSize]uint8) *Table {
	t := &Table{}
	copy(t.p[:TableSize], perm[:])
	copy(t.p[TableSize:], perm[:])
	return t
}

// At returns entry i of the doubled table; i must be in [0, 512).
func (t *Table) At(i int) int { return int(t.p[i]) }

// Len returns the length of the doubled table.
func (t *Table) Len() int { return len(t.p) }

// Values returns a copy of all 512 entries.
func (t *Table) Values() []int {
	out := make([]int, len(t.p))
	for i, v := range t.p {
		out[i] = int(v)
	}
	return out
}
