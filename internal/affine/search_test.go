package affine

import (
	"errors"
	"testing"

	seterrors "github.com/Alex-Andrv/shad-fix-set/errors"
)

func TestFindReturnsFirstAccepted(t *testing.T) {
	keys := []int32{1, 2, 3, 4, 5}
	attempts := 0
	got, err := Find(NewGenerator(testSeed1), 8, keys, 100, func([]int) bool {
		attempts++
		return attempts == 3
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("predicate evaluated %d times, want 3", attempts)
	}

	// The accepted function must be the third draw of the same seed.
	ref := NewGenerator(testSeed1)
	ref.Generate()
	ref.Generate()
	if want := ref.Generate(); got != want {
		t.Errorf("Find returned %+v, want third draw %+v", got, want)
	}
}

func TestFindOccupancyDistribution(t *testing.T) {
	keys := []int32{-3, -1, 0, 2, 9, 100}
	_, err := Find(NewGenerator(testSeed2), 4, keys, 1, func(occupancy []int) bool {
		if len(occupancy) != 4 {
			t.Errorf("len(occupancy) = %d, want 4", len(occupancy))
		}
		total := 0
		for _, count := range occupancy {
			if count < 0 {
				t.Errorf("negative occupancy %d", count)
			}
			total += count
		}
		if total != len(keys) {
			t.Errorf("occupancy total = %d, want %d", total, len(keys))
		}
		return true
	})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
}

func TestFindExhaustionError(t *testing.T) {
	attempts := 0
	_, err := Find(NewGenerator(testSeed1), 4, []int32{1, 2}, 17, func([]int) bool {
		attempts++
		return false
	})
	if !errors.Is(err, seterrors.ErrBadHashFunction) {
		t.Fatalf("err = %v, want ErrBadHashFunction", err)
	}
	if attempts != 17 {
		t.Errorf("ran %d attempts, want exactly 17", attempts)
	}
}

func TestFindDefaultBudget(t *testing.T) {
	attempts := 0
	_, err := Find(NewGenerator(testSeed2), 2, []int32{1}, 0, func([]int) bool {
		attempts++
		return false
	})
	if !errors.Is(err, seterrors.ErrBadHashFunction) {
		t.Fatalf("err = %v, want ErrBadHashFunction", err)
	}
	if attempts != DefaultMaxAttempts {
		t.Errorf("ran %d attempts, want default %d", attempts, DefaultMaxAttempts)
	}
}
