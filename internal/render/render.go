// Package render formats roll outcomes and character sheets as plain text.
package render

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/louisbranch/dicebot/internal/character"
	"github.com/louisbranch/dicebot/internal/dice"
	"github.com/louisbranch/dicebot/internal/roller"
)

// CountSuccesses renders the success count for a roll set, e.g.
// "2 successes: ". A success is any die showing 8 or higher, bonus or not.
func CountSuccesses(rolls []dice.Roll) string {
	count := 0
	for _, roll := range rolls {
		if roll.Success() {
			count++
		}
	}
	noun := "successes"
	if count == 1 {
		noun = "success"
	}
	return fmt.Sprintf("%d %s: ", count, noun)
}

// Rolls renders a roll set in generation order, bonus dice parenthesized.
func Rolls(rolls []dice.Roll) string {
	parts := make([]string, len(rolls))
	for i, roll := range rolls {
		parts[i] = roll.String()
	}
	return strings.Join(parts, ", ")
}

// ChanceLine renders the outcome of a chance die: success on 10 with no
// numeral shown, otherwise a failure line including the value.
func ChanceLine(name string, roll dice.Roll) string {
	if roll.Value == 10 {
		return name + " rolled a chance die and succeeded!"
	}
	return fmt.Sprintf("%s rolled a chance die and failed: %d", name, roll.Value)
}

// PoolLine renders the outcome of a plain numeric pool roll.
func PoolLine(name, pool string, rolls []dice.Roll) string {
	return fmt.Sprintf("%s rolled %s dice and got %s%s", name, pool, CountSuccesses(rolls), Rolls(rolls))
}

// AttribLine renders the outcome of an attribute-based roll: the pool, the
// resolved attribute breakdown, the successes and the dice. When any
// attribute failed to resolve a warning block lists the raw tokens in
// encounter order.
//
// The breakdown pairs come from a map, so their order is
// implementation-defined.
func AttribLine(name string, result roller.Result, rolls []dice.Roll) string {
	pairs := make([]string, 0, len(result.Attributes))
	for attr, value := range result.Attributes {
		pairs = append(pairs, fmt.Sprintf("%s = %d", attr, value))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s rolled %d dice [%s] and got %s%s",
		name, result.Pool, strings.Join(pairs, ", "), CountSuccesses(rolls), Rolls(rolls))
	if len(result.NotFound) > 0 {
		b.WriteString("\n\nWarning: these attributes were not found and defaulted to 0: ")
		b.WriteString(strings.Join(result.NotFound, ", "))
	}
	return b.String()
}

// Sheet renders the character's health track and stats table.
func Sheet(ch *character.Character) string {
	var b strings.Builder
	b.WriteString(health(ch.Health))
	if len(ch.Stats) == 0 {
		b.WriteString("\nNo stats info")
		return b.String()
	}
	b.WriteString("\nStats:\n")
	b.WriteString(statsTable(ch.Stats))
	return b.String()
}

// health renders the health boxes: aggravated first, then lethal, bashing
// and empty boxes up to the maximum.
func health(h character.Health) string {
	if h.Max == 0 {
		return "No health info\n"
	}

	boxes := make([]string, 0, h.Max)
	for i := uint64(0); i < h.Aggravated; i++ {
		boxes = append(boxes, "A")
	}
	for i := uint64(0); i < h.Lethal; i++ {
		boxes = append(boxes, "L")
	}
	for i := uint64(0); i < h.Bashing; i++ {
		boxes = append(boxes, "B")
	}
	for uint64(len(boxes)) < h.Max {
		boxes = append(boxes, " ")
	}

	return fmt.Sprintf("Health (max %d):\n[%s]\n", h.Max, strings.Join(boxes, "]["))
}

// statsTable renders the stats in two sorted columns, mirroring how sheets
// were always printed.
func statsTable(stats map[string]int64) string {
	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	half := (len(keys) + 1) / 2

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Name\tValue\t\tName\tValue")
	for i := 0; i < half; i++ {
		upper := i + half
		if upper >= len(keys) {
			fmt.Fprintf(w, "%s\t%d\t\t\t\n", keys[i], stats[keys[i]])
		} else {
			fmt.Fprintf(w, "%s\t%d\t\t%s\t%d\n", keys[i], stats[keys[i]], keys[upper], stats[keys[upper]])
		}
	}
	w.Flush()
	return b.String()
}
