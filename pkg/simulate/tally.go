package simulate

import (
	"fmt"
	"io"

	"laptudirm.com/x/dicegame/pkg/game"
	"laptudirm.com/x/dicegame/pkg/stats"
)

// Verdict is the conclusion of an SPRT.
type Verdict int

const (
	Undecided Verdict = iota
	AcceptH0
	AcceptH1
)

func (verdict Verdict) String() string {
	switch verdict {
	case AcceptH0:
		return "H0 Accepted"
	case AcceptH1:
		return "H1 Accepted"
	default:
		return "Undecided"
	}
}

// SPRTState is the running state of an SPRT.
type SPRTState struct {
	Elo0, Elo1   float64
	Lower, Upper float64

	LLR     float64
	Verdict Verdict
}

// Tally is the aggregate result of a batch of games, seen from the first
// player's perspective.
type Tally struct {
	Players [2]string

	Games               int
	Wins, Losses, Draws int

	// Rounds tallies every round of every game.
	Rounds game.Scoreboard

	SPRT *SPRTState
}

// Record adds a finished game to the Tally.
func (tally *Tally) Record(summary game.Summary) {
	tally.Games++

	switch summary.Outcome {
	case game.Player1Wins:
		tally.Wins++
	case game.Player2Wins:
		tally.Losses++
	default:
		tally.Draws++
	}

	tally.Rounds.Player1 += summary.Score.Player1
	tally.Rounds.Player2 += summary.Score.Player2
	tally.Rounds.Ties += summary.Score.Ties

	if sprt := tally.SPRT; sprt != nil && sprt.Verdict == Undecided {
		sprt.LLR = stats.SPRT(tally.Wins, tally.Draws, tally.Losses, sprt.Elo0, sprt.Elo1)
		switch {
		case sprt.LLR <= sprt.Lower:
			sprt.Verdict = AcceptH0
		case sprt.LLR >= sprt.Upper:
			sprt.Verdict = AcceptH1
		}
	}
}

// Elo returns the first player's elo estimate and its error margin.
func (tally *Tally) Elo() (elo float64, margin float64) {
	lower, elo, upper := stats.Elo(tally.Wins, tally.Draws, tally.Losses)
	return elo, stats.ErrorMargin(lower, elo, upper)
}

// Report writes the Tally as a table to w.
func (tally *Tally) Report(w io.Writer) error {
	elo, margin := tally.Elo()

	rows := [2]struct {
		elo                 float64
		wins, losses, draws int
	}{
		{elo, tally.Wins, tally.Losses, tally.Draws},
		{0 - elo, tally.Losses, tally.Wins, tally.Draws}, // not -elo, which prints as -0
	}

	lines := []string{
		"╔══════════════════════════════════════════════════════════╗",
		"║    Name               Elo Error   Wins Loss Draw   Total ║",
		"╠══════════════════════════════════════════════════════════╣",
	}

	for i, row := range rows {
		lines = append(lines, fmt.Sprintf(
			"║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║",
			i+1, tally.Players[i],
			row.elo, margin,
			row.wins, row.losses, row.draws,
			tally.Games,
		))
	}

	lines = append(lines,
		"╠══════════════════════════════════════════════════════════╣",
		fmt.Sprintf(
			"%-59s║", fmt.Sprintf("║ ROUNDS | N: %d W: %d L: %d T: %d",
				tally.Rounds.Played(),
				tally.Rounds.Player1, tally.Rounds.Player2, tally.Rounds.Ties,
			),
		),
	)

	if sprt := tally.SPRT; sprt != nil {
		lines = append(lines,
			fmt.Sprintf(
				"%-59s║", fmt.Sprintf("║ LLR    | %.2f (%.2f, %.2f) [%.2f, %.2f]",
					sprt.LLR, sprt.Lower, sprt.Upper, sprt.Elo0, sprt.Elo1,
				),
			),
			fmt.Sprintf("%-59s║", "║ SPRT   | "+sprt.Verdict.String()),
		)
	}

	lines = append(lines, "╚══════════════════════════════════════════════════════════╝")

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
