package dice

import (
	"errors"
	"strconv"
	"testing"
)

// TestDieRollsStayInRange ensures a d6 never rolls outside [1, 6] and that
// every face shows up across a large sample.
func TestDieRollsStayInRange(t *testing.T) {
	die, err := New(DefaultSides, 42)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	seen := make(map[int]int)
	for i := 0; i < 10000; i++ {
		roll := die.Roll()
		if roll < 1 || roll > DefaultSides {
			t.Fatalf("roll #%d = %d, want value in [1, %d]", i, roll, DefaultSides)
		}
		seen[roll]++
	}

	for face := 1; face <= DefaultSides; face++ {
		if seen[face] == 0 {
			t.Fatalf("face %d never rolled in 10000 draws", face)
		}
	}
}

// TestDieIsDeterministic ensures two dice with the same seed agree.
func TestDieIsDeterministic(t *testing.T) {
	a, _ := New(DefaultSides, 7)
	b, _ := New(DefaultSides, 7)

	for i := 0; i < 100; i++ {
		if x, y := a.Roll(), b.Roll(); x != y {
			t.Fatalf("roll #%d differs: %d != %d", i, x, y)
		}
	}
}

func TestNewRejectsInvalidSides(t *testing.T) {
	for _, sides := range []int{-1, 0, 1} {
		t.Run(strconv.Itoa(sides), func(t *testing.T) {
			if _, err := New(sides, 1); !errors.Is(err, ErrInvalidSides) {
				t.Fatalf("New(%d) error = %v, want %v", sides, err, ErrInvalidSides)
			}
		})
	}
}

func TestNewSeedReturnsDifferentValues(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	if a == b {
		t.Fatalf("NewSeed returned %d twice", a)
	}
}

// TestSequenceCycles ensures a replayed sequence wraps around once exhausted.
func TestSequenceCycles(t *testing.T) {
	seq, err := NewSequence(DefaultSides, 3, 1, 6)
	if err != nil {
		t.Fatalf("NewSequence returned error: %v", err)
	}

	want := []int{3, 1, 6, 3, 1, 6, 3}
	for i, w := range want {
		if got := seq.Roll(); got != w {
			t.Fatalf("roll #%d = %d, want %d", i, got, w)
		}
	}
}

func TestNewSequenceRejectsInvalidRolls(t *testing.T) {
	tcs := []struct {
		name  string
		sides int
		rolls []int
		want  error
	}{
		{"empty", DefaultSides, nil, ErrEmptySequence},
		{"zero", DefaultSides, []int{1, 0}, ErrInvalidRoll},
		{"seven", DefaultSides, []int{7}, ErrInvalidRoll},
		{"sides", 1, []int{1}, ErrInvalidSides},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSequence(tc.sides, tc.rolls...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("NewSequence error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence(DefaultSides, "3,1 2, 5")
	if err != nil {
		t.Fatalf("ParseSequence returned error: %v", err)
	}

	want := []int{3, 1, 2, 5}
	if len(seq.Rolls) != len(want) {
		t.Fatalf("parsed %v, want %v", seq.Rolls, want)
	}
	for i := range want {
		if seq.Rolls[i] != want[i] {
			t.Fatalf("parsed %v, want %v", seq.Rolls, want)
		}
	}

	if _, err := ParseSequence(DefaultSides, "3,x"); err == nil {
		t.Fatalf("ParseSequence accepted a non-numeric roll")
	}
	if _, err := ParseSequence(DefaultSides, "9"); !errors.Is(err, ErrInvalidRoll) {
		t.Fatalf("ParseSequence error = %v, want %v", err, ErrInvalidRoll)
	}
}
