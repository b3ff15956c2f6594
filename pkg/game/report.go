package game

import (
	"fmt"
	"io"
)

// Reporter receives the progress of a game as it is played.
type Reporter interface {
	Greet(greeting string) error
	Round(round RoundResult, score Scoreboard) error
	Final(summary Summary) error
}

// Discard is a Reporter which ignores everything.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Greet(string) error                  { return nil }
func (discard) Round(RoundResult, Scoreboard) error { return nil }
func (discard) Final(Summary) error                 { return nil }

// TextReporter writes a human readable account of a game.
type TextReporter struct {
	w       io.Writer
	players [2]string
}

var _ Reporter = (*TextReporter)(nil)

// NewTextReporter creates a TextReporter which writes to w and refers to
// the players by the given names.
func NewTextReporter(w io.Writer, players [2]string) *TextReporter {
	return &TextReporter{w: w, players: players}
}

func (reporter *TextReporter) Greet(greeting string) error {
	if greeting == "" {
		return nil
	}

	_, err := fmt.Fprintln(reporter.w, greeting)
	return err
}

func (reporter *TextReporter) Round(round RoundResult, _ Scoreboard) error {
	if _, err := fmt.Fprintf(
		reporter.w,
		"Round %d: %s rolled %d, %s rolled %d\n",
		round.Number,
		reporter.players[0], round.Rolls[0],
		reporter.players[1], round.Rolls[1],
	); err != nil {
		return err
	}

	var line string
	if winner := round.Outcome.Winner(); winner >= 0 {
		line = reporter.players[winner] + " wins this round!"
	} else {
		line = "It's a tie!"
	}

	_, err := fmt.Fprintln(reporter.w, line)
	return err
}

func (reporter *TextReporter) Final(summary Summary) error {
	if _, err := fmt.Fprintf(
		reporter.w,
		"Final Score: %s - %d, %s - %d\n",
		reporter.players[0], summary.Score.Player1,
		reporter.players[1], summary.Score.Player2,
	); err != nil {
		return err
	}

	var line string
	if winner := summary.Outcome.Winner(); winner >= 0 {
		line = reporter.players[winner] + " wins the game!"
	} else {
		line = "The game is a tie!"
	}

	_, err := fmt.Fprintln(reporter.w, line)
	return err
}
