package noise

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func checkTable(t *testing.T, tbl *Table) {
	t.Helper()
	if tbl.Len() != 2*TableSize {
		t.Fatalf("table length %d, want %d", tbl.Len(), 2*TableSize)
	}
	var seen [TableSize]int
	for i := 0; i < TableSize; i++ {
		v := tbl.At(i)
		if v < 0 || v >= TableSize {
			t.Fatalf("entry %d out of range: %d", i, v)
		}
		seen[v]++
		if tbl.At(i+TableSize) != v {
			t.Fatalf("entry %d not mirrored: %d vs %d", i, v, tbl.At(i+TableSize))
		}
	}
	for v, n := range seen {
		if n != 1 {
			t.Fatalf("value %d appears %d times in first half", v, n)
		}
	}
}

func TestNewTableIsMirroredPermutation(t *testing.T) {
	for _, mode := range []ShuffleMode{ShuffleUniform, ShuffleLegacy} {
		for seed := uint64(0); seed < 20; seed++ {
			r := rand.New(rand.NewPCG(seed, 0))
			checkTable(t, NewTable(r, mode))
		}
	}
}

func TestIdentityTable(t *testing.T) {
	tbl := IdentityTable()
	checkTable(t, tbl)
	for i := 0; i < 2*TableSize; i++ {
		if tbl.At(i) != i%TableSize {
			t.Fatalf("identity entry %d = %d", i, tbl.At(i))
		}
	}
}

func TestLegacyShuffleHasNoFixedPoints(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		tbl := NewTable(rand.New(rand.NewPCG(seed, 7)), ShuffleLegacy)
		for i := 0; i < TableSize; i++ {
			if tbl.At(i) == i {
				t.Fatalf("seed %d: legacy shuffle left %d in place", seed, i)
			}
		}
	}
}

func TestUniformShuffleCanLeaveFixedPoints(t *testing.T) {
	found := false
	for seed := uint64(1); seed <= 50 && !found; seed++ {
		tbl := NewTable(rand.New(rand.NewPCG(seed, 7)), ShuffleUniform)
		for i := 0; i < TableSize; i++ {
			if tbl.At(i) == i {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("uniform shuffle never produced a fixed point across 50 seeds")
	}
}

func TestNewTableDeterministic(t *testing.T) {
	a := NewTable(rand.New(rand.NewPCG(42, 0)), ShuffleUniform)
	b := NewTable(rand.New(rand.NewPCG(42, 0)), ShuffleUniform)
	if !slices.Equal(a.Values(), b.Values()) {
		t.Fatal("same seed produced different tables")
	}
	c := NewTable(rand.New(rand.NewPCG(43, 0)), ShuffleUniform)
	if slices.Equal(a.Values(), c.Values()) {
		t.Fatal("different seeds produced identical tables")
	}
}

func TestTableFrom(t *testing.T) {
	perm := make([]int, TableSize)
	for i := range perm {
		perm[i] = TableSize - 1 - i
	}
	tbl, err := TableFrom(perm)
	if err != nil {
		t.Fatalf("TableFrom: %v", err)
	}
	checkTable(t, tbl)
	if tbl.At(0) != 255 || tbl.At(256) != 255 {
		t.Fatalf("unexpected head %d/%d", tbl.At(0), tbl.At(256))
	}

	perm[3] = perm[4]
	if _, err := TableFrom(perm); !errors.Is(err, ErrInvalidPermutation) {
		t.Fatalf("duplicate value: err = %v, want ErrInvalidPermutation", err)
	}
	if _, err := TableFrom(perm[:10]); !errors.Is(err, ErrInvalidPermutation) {
		t.Fatalf("short permutation: err = %v, want ErrInvalidPermutation", err)
	}
	perm[3] = 300
	if _, err := TableFrom(perm); !errors.Is(err, ErrInvalidPermutation) {
		t.Fatalf("out of range value: err = %v, want ErrInvalidPermutation", err)
	}
}

func TestParseShuffleMode(t *testing.T) {
	for _, mode := range []ShuffleMode{ShuffleUniform, ShuffleLegacy} {
		got, err := ParseShuffleMode(mode.String())
		if err != nil || got != mode {
			t.Fatalf("ParseShuffleMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseShuffleMode("sattolo"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
