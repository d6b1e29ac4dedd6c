// Package dice implements the ten-sided dice pool engine.
//
// Pools follow Chronicles of Darkness rules: each die rolls 1-10, dice at
// or above the active re-roll threshold chain into bonus dice, and a die
// showing 8 or higher counts as a success.
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

const sides = 10

// ErrNegativePool indicates a roll was requested for a negative pool.
var ErrNegativePool = errors.New("pool must be non-negative")

// Modifier selects which die values trigger a re-roll.
type Modifier int

const (
	// Again10 re-rolls dice showing 10. It is the default rule.
	Again10 Modifier = iota
	// Again9 re-rolls dice showing 9 or 10.
	Again9
	// Again8 re-rolls dice showing 8, 9 or 10.
	Again8
	// NoAgain never re-rolls.
	NoAgain
)

func (m Modifier) String() string {
	switch m {
	case Again10:
		return "10again"
	case Again9:
		return "9again"
	case Again8:
		return "8again"
	case NoAgain:
		return "no10again"
	default:
		return "unknown"
	}
}

// ModifierForString resolves a modifier keyword to its Modifier.
//
// Matching is by substring containment so the keyword may be embedded in a
// larger message. Precedence runs no10again, 9again, 8again; anything else
// resolves to the Again10 default, making the function total.
func ModifierForString(s string) Modifier {
	switch {
	case strings.Contains(s, "no10again"):
		return NoAgain
	case strings.Contains(s, "9again"):
		return Again9
	case strings.Contains(s, "8again"):
		return Again8
	default:
		return Again10
	}
}

// RollAgain reports whether a die showing value chains into a bonus die
// under the modifier.
func RollAgain(value int, m Modifier) bool {
	switch m {
	case Again10:
		return value == sides
	case Again9:
		return value >= 9
	case Again8:
		return value >= 8
	default:
		return false
	}
}

// Roll is the result of rolling a single die.
type Roll struct {
	// Value is the die face, 1 through 10.
	Value int
	// Bonus marks a die produced by a re-roll trigger rather than the
	// original pool count.
	Bonus bool
}

// String renders the die value, parenthesized for bonus dice.
func (r Roll) String() string {
	if r.Bonus {
		return "(" + strconv.Itoa(r.Value) + ")"
	}
	return strconv.Itoa(r.Value)
}

// Success reports whether the die counts as a success (8 or higher,
// regardless of bonus status).
func (r Roll) Success() bool {
	return r.Value > 7
}

// PoolRequest describes a request to roll a pool of d10s.
type PoolRequest struct {
	Pool     int64
	Modifier Modifier
	Seed     int64
}

// RollPool rolls the requested pool.
//
// # Determinism
//
// RollPool is deterministic with respect to the Seed field: the same seed,
// pool and modifier always produce the same sequence of rolls.
//
// # Ordering
//
// Dice appear in generation order. Each of the Pool original dice is
// followed immediately by its chain of bonus dice: whenever a die triggers
// the modifier, one more die is drawn and marked as a bonus, and the chain
// continues until a non-triggering value appears.
//
// A pool of zero yields an empty sequence. A negative pool returns
// ErrNegativePool before any die is drawn.
func RollPool(request PoolRequest) ([]Roll, error) {
	if request.Pool < 0 {
		return nil, ErrNegativePool
	}

	rng := rand.New(rand.NewSource(request.Seed))
	rolls := make([]Roll, 0, request.Pool)
	for i := int64(0); i < request.Pool; i++ {
		bonus := false
		for {
			value := rollDie(rng)
			rolls = append(rolls, Roll{Value: value, Bonus: bonus})
			if !RollAgain(value, request.Modifier) {
				break
			}
			bonus = true
		}
	}

	return rolls, nil
}

// RollChance rolls a single chance die. The die is never a bonus die and
// no re-roll rule applies, regardless of any active modifier.
func RollChance(seed int64) Roll {
	rng := rand.New(rand.NewSource(seed))
	return Roll{Value: rollDie(rng)}
}

// NewSeed generates a high-entropy seed using crypto/rand, suitable for
// initializing the deterministic roll functions.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// rollDie rolls a single ten-sided die.
func rollDie(rng *rand.Rand) int {
	return rng.Intn(sides) + 1
}
