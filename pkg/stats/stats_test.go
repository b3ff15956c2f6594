package stats

import (
	"math"
	"testing"
)

func TestEloOfEvenRecordIsZero(t *testing.T) {
	lower, elo, upper := Elo(40, 20, 40)
	if math.Abs(elo) > 1e-9 {
		t.Fatalf("elo = %f, want 0", elo)
	}
	if !(lower < elo && elo < upper) {
		t.Fatalf("bounds not ordered: %f < %f < %f", lower, elo, upper)
	}
	if math.Abs(lower+upper) > 1e-9 {
		t.Fatalf("bounds not symmetric: %f, %f", lower, upper)
	}
}

func TestEloIsAntisymmetric(t *testing.T) {
	_, a, _ := Elo(60, 10, 30)
	_, b, _ := Elo(30, 10, 60)

	if a <= 0 {
		t.Fatalf("elo of winning record = %f, want positive", a)
	}
	if math.Abs(a+b) > 1e-9 {
		t.Fatalf("elo(%f) != -elo(%f)", a, b)
	}
}

func TestEloOfEmptyRecord(t *testing.T) {
	lower, elo, upper := Elo(0, 0, 0)
	if lower != 0 || elo != 0 || upper != 0 {
		t.Fatalf("Elo(0, 0, 0) = %f, %f, %f", lower, elo, upper)
	}
}

func TestErrorMargin(t *testing.T) {
	if got := ErrorMargin(-10, 5, 12); got != 15 {
		t.Fatalf("ErrorMargin = %f, want 15", got)
	}
}

func TestStoppingBounds(t *testing.T) {
	lower, upper := StoppingBounds(0.05, 0.05)
	if !(lower < 0 && 0 < upper) {
		t.Fatalf("bounds = (%f, %f), want lower < 0 < upper", lower, upper)
	}
	if math.Abs(upper-math.Log(19)) > 1e-9 {
		t.Fatalf("upper = %f, want ln(19)", upper)
	}
}

func TestSPRTFavoursTheRightHypothesis(t *testing.T) {
	if llr := SPRT(500, 200, 500, 0, 20); llr >= 0 {
		t.Fatalf("even record llr = %f, want negative", llr)
	}
	if llr := SPRT(700, 200, 300, 0, 20); llr <= 0 {
		t.Fatalf("winning record llr = %f, want positive", llr)
	}
}
