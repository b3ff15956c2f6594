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

package cmd

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/dicegame/pkg/dice"
	"laptudirm.com/x/dicegame/pkg/simulate"
)

const SPIN = 31

// dicegame simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many games and report aggregate statistics",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`simulate plays a batch of games concurrently and reports
			how both players fared, including the first player's elo
			estimate with its 95% error margin. With fair dice the elo
			should be close to zero.

			The --sprt flag runs a sequential probability ratio test of
			the --elo0 hypothesis against the --elo1 hypothesis and stops
			as soon as one of them is accepted.

			Game n of the batch uses the die seeded with seed+n, so the
			same seed always produces the same report.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cfg.Seed == 0 {
				if cfg.Seed, err = dice.NewSeed(); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			reportEvery, _ := flags.GetInt("report-every")

			var sprt simulate.SPRTConfig
			sprt.Enabled, _ = flags.GetBool("sprt")
			sprt.Elo0, _ = flags.GetFloat64("elo0")
			sprt.Elo1, _ = flags.GetFloat64("elo1")
			sprt.Alpha, _ = flags.GetFloat64("alpha")
			sprt.Beta, _ = flags.GetFloat64("beta")

			runner, err := simulate.New(simulate.Config{
				Game:  cfg.Game(),
				Sides: cfg.Sides,
				Seed:  cfg.Seed,

				Games:       cfg.Games,
				Concurrency: cfg.Concurrency,

				ReportEvery: reportEvery,
				Output:      cmd.OutOrStdout(),

				SPRT: sprt,
			})
			if err != nil {
				return err
			}

			logrus.Infof(
				"Simulating \x1b[33m%d\x1b[0m games on %d threads with seed \x1b[33m%d\x1b[0m",
				cfg.Games, cfg.Concurrency, cfg.Seed,
			)

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))

			// The spinner garbles the per game logs.
			if !logrus.IsLevelEnabled(logrus.DebugLevel) && reportEvery == 0 {
				s.Start()
			}

			tally, err := runner.Start()
			s.Stop()

			if err != nil {
				return err
			}

			return tally.Report(cmd.OutOrStdout())
		},
	}

	gameFlags(cmd)

	cmd.Flags().Int("games", 0, "Number of games to play (default from config)")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of games to play at once (default from config)")
	cmd.Flags().Int("report-every", 0, "Print a report after every n games")

	cmd.Flags().Bool("sprt", false, "Stop once an SPRT reaches a verdict")
	cmd.Flags().Float64("elo0", 0, "The SPRT's null elo hypothesis")
	cmd.Flags().Float64("elo1", 10, "The SPRT's alternate elo hypothesis")
	cmd.Flags().Float64("alpha", 0.05, "The SPRT's type I error probability")
	cmd.Flags().Float64("beta", 0.05, "The SPRT's type II error probability")

	return cmd
}
