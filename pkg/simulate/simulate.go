// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package simulate plays batches of dice games concurrently and tallies
// their results. Game n of a batch always uses the die seeded with Seed+n,
// so a batch is reproducible regardless of how many games run at once.
package simulate

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/dicegame/pkg/dice"
	"laptudirm.com/x/dicegame/pkg/game"
	"laptudirm.com/x/dicegame/pkg/stats"
)

var (
	ErrInvalidGames       = errors.New("games must be at least 1")
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")
	ErrInvalidBounds      = errors.New("alpha and beta must be in (0, 1)")
	ErrInvalidHypotheses  = errors.New("elo0 must be less than elo1")
)

type Config struct {
	// The settings of every game in the batch.
	Game  game.Config
	Sides int

	// Game n is played with a die seeded with Seed+n.
	Seed int64

	// Number of games to play and how many of them to play at once.
	Games       int
	Concurrency int

	// Print a report to Output after every ReportEvery games. Zero
	// disables intermediate reports.
	ReportEvery int
	Output      io.Writer

	SPRT SPRTConfig
}

// SPRTConfig configures a sequential probability ratio test which ends the
// batch early once it can decide between the two elo hypotheses for the
// first player.
type SPRTConfig struct {
	Enabled bool

	Elo0, Elo1  float64 // The null and the alternate elo hypotheses.
	Alpha, Beta float64 // Probabilities of type I and II errors.
}

func (config *Config) validate() error {
	switch {
	case config.Games < 1:
		return ErrInvalidGames
	case config.Concurrency < 1:
		return ErrInvalidConcurrency
	}

	if err := config.Game.Validate(); err != nil {
		return err
	}

	if _, err := dice.New(config.Sides, config.Seed); err != nil {
		return err
	}

	if config.SPRT.Enabled {
		sprt := config.SPRT
		if sprt.Alpha <= 0 || sprt.Alpha >= 1 || sprt.Beta <= 0 || sprt.Beta >= 1 {
			return ErrInvalidBounds
		}

		if sprt.Elo0 >= sprt.Elo1 {
			return ErrInvalidHypotheses
		}
	}

	return nil
}

// Runner plays a single batch of games.
type Runner struct {
	Config

	games   chan int
	results chan Result
	stop    chan struct{}

	tally Tally
}

// New creates a new Runner with the given configuration.
func New(config Config) (*Runner, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	if config.Output == nil {
		config.Output = io.Discard
	}

	runner := &Runner{
		Config: config,

		games:   make(chan int),
		results: make(chan Result),
		stop:    make(chan struct{}),
	}

	runner.tally.Players = config.Game.Players
	if config.SPRT.Enabled {
		lower, upper := stats.StoppingBounds(config.SPRT.Alpha, config.SPRT.Beta)
		runner.tally.SPRT = &SPRTState{
			Elo0:  config.SPRT.Elo0,
			Elo1:  config.SPRT.Elo1,
			Lower: lower,
			Upper: upper,
		}
	}

	return runner, nil
}

// Start plays the batch and returns its Tally once every game has finished
// or the SPRT has reached a verdict. A Runner can only be started once.
func (runner *Runner) Start() (Tally, error) {
	var threads sync.WaitGroup
	for i := 0; i < runner.Concurrency; i++ {
		threads.Add(1)
		go func() {
			defer threads.Done()
			runner.Thread()
		}()
	}

	handled := make(chan error, 1)
	go func() {
		handled <- runner.ResultHandler()
	}()

dispatch:
	for number := 1; number <= runner.Games; number++ {
		select {
		case runner.games <- number:
		case <-runner.stop:
			break dispatch
		}
	}

	close(runner.games)
	threads.Wait()
	close(runner.results)

	err := <-handled
	return runner.tally, err
}

// Thread plays games from the queue until it is closed.
func (runner *Runner) Thread() {
	for number := range runner.games {
		runner.results <- runner.RunGame(number)
	}
}

// Result is the result of a single game in the batch.
type Result struct {
	Number  int
	Summary game.Summary
	Err     error
}

// RunGame plays the given game of the batch.
func (runner *Runner) RunGame(number int) Result {
	seed := runner.Seed + int64(number)

	config := runner.Game
	config.Seed = seed

	die, err := dice.New(runner.Sides, seed)
	if err != nil {
		return Result{Number: number, Err: err}
	}

	summary, err := game.Play(config, die, game.Discard)
	return Result{
		Number:  number,
		Summary: summary,
		Err:     err,
	}
}

// ResultHandler tallies results in game order, so that the tally and the
// SPRT verdict only depend on the seed. It returns the first game error.
func (runner *Runner) ResultHandler() error {
	pending := make(map[int]Result)
	next := 1
	stopped := false

	var first error
	halt := func() {
		if !stopped {
			stopped = true
			close(runner.stop)
		}
	}

	for result := range runner.results {
		pending[result.Number] = result

		for {
			result, found := pending[next]
			if !found {
				break
			}

			delete(pending, next)
			next++

			if stopped {
				continue
			}

			if result.Err != nil {
				first = fmt.Errorf("game #%d: %w", result.Number, result.Err)
				halt()
				continue
			}

			runner.tally.Record(result.Summary)

			logrus.Debugf(
				"\x1b[32mFinished\x1b[0m Game #%d: %s - %d, %s - %d: %s",
				result.Number,
				runner.Game.Players[0], result.Summary.Score.Player1,
				runner.Game.Players[1], result.Summary.Score.Player2,
				result.Summary.Outcome,
			)

			if runner.ReportEvery > 0 && runner.tally.Games%runner.ReportEvery == 0 {
				if err := runner.tally.Report(runner.Output); err != nil {
					logrus.Error(err)
				}
			}

			if sprt := runner.tally.SPRT; sprt != nil && sprt.Verdict != Undecided {
				logrus.Infof("SPRT finished after %d games: %s", runner.tally.Games, sprt.Verdict)
				halt()
			}
		}
	}

	return first
}
