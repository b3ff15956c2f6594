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

// Package config loads the settings shared by dicegame's commands. Values
// are layered: built-in defaults, then the yaml config file, then the
// environment (including a .env file in the working directory).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/dicegame/pkg/dice"
	"laptudirm.com/x/dicegame/pkg/game"
)

const FilePermissions = 0644
const DirPermissions = 0755

// Directory is where dicegame keeps its configuration.
var Directory = filepath.Join(xdg.ConfigHome, "dicegame")

// ErrExists indicates an attempt to overwrite an existing config file.
var ErrExists = errors.New("config file already exists")

var (
	ErrInvalidSides       = errors.New("sides must be at least 2")
	ErrInvalidGames       = errors.New("games must be at least 1")
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")
)

// DefaultPath returns the path of the default config file.
func DefaultPath() string {
	return filepath.Join(Directory, "config.yaml")
}

type Config struct {
	// Single game settings.
	Rounds   int       `yaml:"rounds"         env:"DICEGAME_ROUNDS"`
	Sides    int       `yaml:"sides"          env:"DICEGAME_SIDES"`
	Seed     int64     `yaml:"seed,omitempty" env:"DICEGAME_SEED"` // 0 picks a random seed
	Greeting string    `yaml:"greeting"`
	Players  [2]string `yaml:"players,flow"`

	// Simulation settings.
	Games       int `yaml:"games"       env:"DICEGAME_GAMES"`
	Concurrency int `yaml:"concurrency" env:"DICEGAME_CONCURRENCY"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rounds:   game.DefaultRounds,
		Sides:    dice.DefaultSides,
		Greeting: game.DefaultGreeting,
		Players:  game.DefaultPlayers,

		Games:       1000,
		Concurrency: runtime.NumCPU(),
	}
}

// Load reads the config file at path on top of the defaults and applies
// any environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		logrus.Debugf("Loading config from \x1b[33m%s\x1b[0m", path)
		if err := yaml.Unmarshal(file, &config); err != nil {
			return config, fmt.Errorf("load config %s: %w", path, err)
		}

	case errors.Is(err, fs.ErrNotExist):
		logrus.Debugf("No config at %s, using defaults", path)

	default:
		return config, fmt.Errorf("load config: %w", err)
	}

	// A .env file is optional.
	if err := godotenv.Load(); err == nil {
		logrus.Debug("Loaded environment from .env")
	}

	if err := env.Parse(&config); err != nil {
		return config, fmt.Errorf("parse env: %w", err)
	}

	return config, config.Validate()
}

// Validate checks the settings which are not validated by the packages
// they are passed to.
func (config Config) Validate() error {
	if config.Sides < 2 {
		return ErrInvalidSides
	}

	if config.Games < 1 {
		return ErrInvalidGames
	}

	if config.Concurrency < 1 {
		return ErrInvalidConcurrency
	}

	if err := config.Game().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Game returns the settings of a single game.
func (config Config) Game() game.Config {
	return game.Config{
		Rounds:   config.Rounds,
		Greeting: config.Greeting,
		Players:  config.Players,
		Seed:     config.Seed,
	}
}

// Marshal returns the yaml representation of the Config.
func (config Config) Marshal() ([]byte, error) {
	return yaml.Marshal(config)
}

// Write writes the Config to path, creating its directory if needed. An
// existing file is only replaced if force is set.
func Write(path string, config Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("write config %s: %w", path, ErrExists)
	}

	data, err := config.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return os.WriteFile(path, data, FilePermissions)
}
