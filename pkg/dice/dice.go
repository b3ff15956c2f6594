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

// Package dice implements the die rolls used by the game. Every source of
// randomness is hidden behind the Roller interface so that games can be
// replayed from a seed or from a fixed sequence of rolls.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// DefaultSides is the number of faces on a standard die.
const DefaultSides = 6

// ErrInvalidSides indicates a die with less than two faces.
var ErrInvalidSides = errors.New("a die must have at least 2 sides")

// ErrInvalidRoll indicates a replayed roll outside the die's range.
var ErrInvalidRoll = errors.New("roll is outside the die's range")

// ErrEmptySequence indicates a replay sequence without any rolls.
var ErrEmptySequence = errors.New("at least one roll must be provided")

// Roller is a source of die rolls.
type Roller interface {
	// Roll returns the value of a single die roll.
	Roll() int
}

// Die is a pseudo-random die with a fixed number of sides.
type Die struct {
	Sides int
	Seed  int64

	rng *rand.Rand
}

var _ Roller = (*Die)(nil)

// New creates a new Die with the given number of sides whose rolls are
// deterministic with respect to the given seed.
func New(sides int, seed int64) (*Die, error) {
	if sides < 2 {
		return nil, fmt.Errorf("new die: %w", ErrInvalidSides)
	}

	return &Die{
		Sides: sides,
		Seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Roll returns a value uniformly drawn from [1, Sides].
func (die *Die) Roll() int {
	return die.rng.Intn(die.Sides) + 1
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays a fixed list of rolls. Once the list is exhausted it
// starts again from the first roll.
type Sequence struct {
	Rolls []int

	next int
}

var _ Roller = (*Sequence)(nil)

// NewSequence creates a Sequence which replays the given rolls of a die
// with the provided number of sides.
func NewSequence(sides int, rolls ...int) (*Sequence, error) {
	if sides < 2 {
		return nil, fmt.Errorf("new sequence: %w", ErrInvalidSides)
	}

	if len(rolls) == 0 {
		return nil, fmt.Errorf("new sequence: %w", ErrEmptySequence)
	}

	for i, roll := range rolls {
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("new sequence: roll #%d (%d) on d%d: %w", i+1, roll, sides, ErrInvalidRoll)
		}
	}

	return &Sequence{Rolls: rolls}, nil
}

// ParseSequence parses a comma or space separated list of rolls, like
// "3,1 2,5", into a Sequence.
func ParseSequence(sides int, str string) (*Sequence, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || r == ' '
	})

	rolls := make([]int, 0, len(fields))
	for _, field := range fields {
		roll, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse sequence: %w", err)
		}

		rolls = append(rolls, roll)
	}

	return NewSequence(sides, rolls...)
}

// Roll returns the next roll of the sequence.
func (seq *Sequence) Roll() int {
	roll := seq.Rolls[seq.next]
	seq.next = (seq.next + 1) % len(seq.Rolls)
	return roll
}
