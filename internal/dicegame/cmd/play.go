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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/dicegame/pkg/dice"
	"laptudirm.com/x/dicegame/pkg/game"
)

// dicegame play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single game",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play plays a single game between two players. In every
			round both players roll a die and the higher roll takes the
			round. Whoever takes more rounds wins the game.

			The rolls are random unless a seed is given, in which case the
			same seed always plays the same game. The --rolls flag replays
			an exact list of rolls instead, alternating between the first
			and the second player, e.g. --rolls 3,1,2,5,4,4,6,2,1,1.`),

		RunE: playGame,
	}

	gameFlags(cmd)
	return cmd
}

// gameFlags registers the flags which configure a single game.
func gameFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rounds", game.DefaultRounds, "Number of rounds in a game")
	cmd.Flags().Int("sides", dice.DefaultSides, "Number of sides of the die")
	cmd.Flags().Int64("seed", 0, "Seed of the die, random if unset")
	cmd.Flags().String("rolls", "", "Replay the given comma separated rolls")
}

func playGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	settings := cfg.Game()

	var roller dice.Roller
	if rolls, _ := cmd.Flags().GetString("rolls"); rolls != "" {
		seq, err := dice.ParseSequence(cfg.Sides, rolls)
		if err != nil {
			return err
		}

		if len(seq.Rolls) < 2*settings.Rounds {
			logrus.Warnf("Only %d rolls given for %d rounds, repeating them", len(seq.Rolls), settings.Rounds)
		}

		roller = seq
	} else {
		if settings.Seed == 0 {
			if settings.Seed, err = dice.NewSeed(); err != nil {
				return err
			}
		}

		logrus.Debugf("Rolling a d%d with seed \x1b[33m%d\x1b[0m", cfg.Sides, settings.Seed)
		if roller, err = dice.New(cfg.Sides, settings.Seed); err != nil {
			return err
		}
	}

	reporter := game.NewTextReporter(cmd.OutOrStdout(), settings.Players)
	_, err = game.Play(settings, roller, reporter)
	return err
}
