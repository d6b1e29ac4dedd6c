// Package roller evaluates roll expressions against a character sheet.
//
// An expression mixes integer literals, attribute names and +/- operators,
// optionally carrying a re-roll keyword such as "9again" or "no10again".
// Evaluation produces the signed dice pool, the resolved modifier and a
// record of which attribute names resolved.
package roller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/louisbranch/dicebot/internal/character"
	"github.com/louisbranch/dicebot/internal/dice"
)

var (
	numericRe = regexp.MustCompile(`^\d+$`)
	againRe   = regexp.MustCompile(`^(?:no)?\d+again$`)
)

// Result is the outcome of evaluating a roll expression.
type Result struct {
	// Pool is the signed die count the expression sums to.
	Pool int64
	// Modifier is the re-roll rule extracted from the expression.
	Modifier dice.Modifier
	// Attributes maps each resolved attribute name to its value.
	Attributes map[string]int64
	// NotFound lists unresolved attribute tokens in encounter order,
	// original casing preserved. Each contributed 0 to the pool.
	NotFound []string
}

// Evaluate parses a roll expression against the character.
//
// The first whitespace-delimited token matching the re-roll grammar is
// removed from the expression and resolved as the modifier; without one the
// modifier defaults to Again10. Remaining tokens are walked left to right:
// "-" negates the next operand, "+" separates, digit runs are literals and
// anything else resolves through the character's stats. Unresolved names
// contribute 0 and are only recorded, never treated as an error, so a roll
// stays usable against an incomplete sheet.
func Evaluate(ch *character.Character, line string) Result {
	result := Result{
		Modifier:   dice.Again10,
		Attributes: map[string]int64{},
	}

	parts := strings.Fields(line)
	for i, part := range parts {
		if againRe.MatchString(part) {
			result.Modifier = dice.ModifierForString(part)
			parts = append(parts[:i], parts[i+1:]...)
			break
		}
	}

	// Space out the operators so "strength-1" and "strength - 1" tokenize
	// identically.
	line = strings.Join(parts, " ")
	line = strings.ReplaceAll(line, "+", " + ")
	line = strings.ReplaceAll(line, "-", " - ")

	multiplier := int64(1)
	for _, part := range strings.Fields(line) {
		if part == "-" {
			multiplier = -1
			continue
		}
		if numericRe.MatchString(part) {
			value, _ := strconv.ParseInt(part, 10, 64)
			result.Pool += value * multiplier
		} else if part != "+" {
			found, value := ch.GetValue(part)
			if found {
				result.Attributes[part] = value
			} else {
				result.NotFound = append(result.NotFound, part)
			}
			result.Pool += value * multiplier
		}
		multiplier = 1
	}

	return result
}
