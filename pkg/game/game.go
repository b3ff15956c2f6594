// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package game implements the round based dice game: each round both
// players roll a die, the higher roll takes the round, and the player who
// took more rounds wins the game.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/dicegame/pkg/dice"
)

// DefaultRounds is the number of rounds in a standard game.
const DefaultRounds = 5

// DefaultGreeting is printed before the first round.
const DefaultGreeting = "Hello, World!"

// DefaultPlayers are the names used in the game's output.
var DefaultPlayers = [2]string{"Player 1", "Player 2"}

// ErrInvalidRounds indicates a game without any rounds.
var ErrInvalidRounds = errors.New("a game must have at least one round")

// ErrInvalidPlayers indicates a player without a name.
var ErrInvalidPlayers = errors.New("both players must have a name")

// Config describes a single game.
type Config struct {
	Rounds   int
	Greeting string
	Players  [2]string

	// Seed is the seed of the game's die. It is only informational and
	// copied into the game's Summary.
	Seed int64
}

// DefaultConfig returns the configuration of a standard game.
func DefaultConfig() Config {
	return Config{
		Rounds:   DefaultRounds,
		Greeting: DefaultGreeting,
		Players:  DefaultPlayers,
	}
}

// Validate checks if the Config describes a playable game.
func (config Config) Validate() error {
	if config.Rounds < 1 {
		return ErrInvalidRounds
	}

	if config.Players[0] == "" || config.Players[1] == "" {
		return ErrInvalidPlayers
	}

	return nil
}

// Scoreboard tallies the rounds won by each player.
type Scoreboard struct {
	Player1, Player2 int
	Ties             int
}

// Played returns the number of rounds recorded on the Scoreboard.
func (board Scoreboard) Played() int {
	return board.Player1 + board.Player2 + board.Ties
}

// Record updates the Scoreboard with a round's Outcome.
func (board *Scoreboard) Record(outcome Outcome) {
	switch outcome {
	case Player1Wins:
		board.Player1++
	case Player2Wins:
		board.Player2++
	default:
		board.Ties++
	}
}

// Outcome returns the result of the game scored by the Scoreboard.
func (board Scoreboard) Outcome() Outcome {
	return Compare(board.Player1, board.Player2)
}

// RoundResult is the result of a single round.
type RoundResult struct {
	Number  int // 1-based
	Rolls   [2]int
	Outcome Outcome
}

// Summary is the result of a complete game.
type Summary struct {
	ID   uuid.UUID
	Seed int64

	Score   Scoreboard
	Outcome Outcome
}

// Play plays a game with the given configuration, drawing both players'
// rolls from roller. Every step of the game is sent to the reporter and the
// first reporting error ends the game.
func Play(config Config, roller dice.Roller, reporter Reporter) (Summary, error) {
	if err := config.Validate(); err != nil {
		return Summary{}, fmt.Errorf("play game: %w", err)
	}

	if reporter == nil {
		reporter = Discard
	}

	summary := Summary{
		ID:   uuid.New(),
		Seed: config.Seed,
	}

	log := logrus.WithField("game", summary.ID)
	log.WithField("seed", config.Seed).Trace("starting game")

	if err := reporter.Greet(config.Greeting); err != nil {
		return summary, fmt.Errorf("play game: %w", err)
	}

	for i := 0; i < config.Rounds; i++ {
		round := RoundResult{Number: i + 1}
		round.Rolls[0] = roller.Roll()
		round.Rolls[1] = roller.Roll()
		round.Outcome = Compare(round.Rolls[0], round.Rolls[1])

		summary.Score.Record(round.Outcome)

		if err := reporter.Round(round, summary.Score); err != nil {
			return summary, fmt.Errorf("play game: round %d: %w", round.Number, err)
		}
	}

	summary.Outcome = summary.Score.Outcome()
	log.Tracef("finished game: %s", summary.Outcome)

	if err := reporter.Final(summary); err != nil {
		return summary, fmt.Errorf("play game: %w", err)
	}

	return summary, nil
}
