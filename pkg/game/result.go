package game

// Outcome represents the result of a single round or of a whole game, seen
// from the first player's perspective.
type Outcome int

const (
	Player1Wins Outcome = +1
	Tie         Outcome = 0
	Player2Wins Outcome = -1
)

// Compare returns the Outcome of a contest where the first player scored a
// and the second player scored b. The higher value wins.
func Compare(a, b int) Outcome {
	switch {
	case a > b:
		return Player1Wins
	case b > a:
		return Player2Wins
	default:
		return Tie
	}
}

// Swap returns the Outcome as seen from the other player's perspective.
func (outcome Outcome) Swap() Outcome {
	return -outcome
}

// Winner returns the index of the winning player, or -1 on a tie.
func (outcome Outcome) Winner() int {
	switch outcome {
	case Player1Wins:
		return 0
	case Player2Wins:
		return 1
	default:
		return -1
	}
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case Player1Wins:
		return "1-0"
	case Tie:
		return "1/2-1/2"
	case Player2Wins:
		return "0-1"
	default:
		return "?-?"
	}
}
