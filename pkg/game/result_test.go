package game

import "testing"

func TestCompare(t *testing.T) {
	tcs := []struct {
		a, b int
		want Outcome
	}{
		{3, 1, Player1Wins},
		{2, 5, Player2Wins},
		{4, 4, Tie},
		{0, 0, Tie},
	}

	for _, tc := range tcs {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("Compare(%d, %d) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
		if got := Compare(tc.b, tc.a); got != tc.want.Swap() {
			t.Fatalf("Compare(%d, %d) = %s, want %s", tc.b, tc.a, got, tc.want.Swap())
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tcs := map[Outcome]string{
		Player1Wins: "1-0",
		Tie:         "1/2-1/2",
		Player2Wins: "0-1",
		Outcome(7):  "?-?",
	}

	for outcome, want := range tcs {
		if got := outcome.String(); got != want {
			t.Fatalf("Outcome(%d).String() = %q, want %q", int(outcome), got, want)
		}
	}
}
