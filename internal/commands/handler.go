// Package commands implements the chat-style command layer over the dice
// core: typed argument parsing, dispatch and reply text for the roll,
// stats, character, help, merit and history commands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/louisbranch/dicebot/internal/character"
	"github.com/louisbranch/dicebot/internal/dice"
	"github.com/louisbranch/dicebot/internal/history"
	"github.com/louisbranch/dicebot/internal/render"
	"github.com/louisbranch/dicebot/internal/roller"
	"github.com/louisbranch/dicebot/internal/storage/jsonfile"
)

const chanceKeyword = "chance"

const (
	statsUsage        = "`!stats edit <stat_name> <stat_value>`"
	characterUsage    = "`!character edit <stat_name> <stat_value>`"
	valueNotANumber   = "`The <stat_value> argument must be a number`"
	negativePoolReply = "The dice pool must not be negative."
	meritNotFound     = "Could not find merit."
)

var numericRe = regexp.MustCompile(`^\d+$`)

// Handler executes bot commands on behalf of a player. Each invocation
// loads the character store, applies the command and, for edits, saves the
// whole store back; a failed save fails the command.
type Handler struct {
	// DataPath is the character-store JSON file.
	DataPath string
	// MeritsDir holds merit reference images.
	MeritsDir string
	// HistoryStore records executed rolls when non-nil.
	HistoryStore *history.Store
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// Seed provides seeds for the dice engine. Defaults to dice.NewSeed.
	Seed func() (int64, error)
	// Now provides timestamps for history entries. Defaults to time.Now.
	Now func() time.Time
}

// Roll executes a roll expression for the player.
//
// A bare non-negative integer or the chance keyword rolls directly; any
// other text is evaluated as an attribute expression against the player's
// character, falling back to a blank character when none is stored.
func (h *Handler) Roll(ctx context.Context, player, args string) (string, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		h.log().Debug("no args supplied to roll command")
		return "", nil
	}

	seed, err := h.seed()
	if err != nil {
		return "", fmt.Errorf("roll seed: %w", err)
	}

	if args == chanceKeyword {
		roll := dice.RollChance(seed)
		h.recordRoll(ctx, player, args, 1, dice.ModifierForString(args), []dice.Roll{roll})
		return render.ChanceLine(player, roll), nil
	}

	if numericRe.MatchString(args) {
		pool, err := strconv.ParseInt(args, 10, 64)
		if err != nil {
			return "", fmt.Errorf("parse pool: %w", err)
		}
		modifier := dice.ModifierForString(args)
		rolls, err := dice.RollPool(dice.PoolRequest{Pool: pool, Modifier: modifier, Seed: seed})
		if err != nil {
			return "", fmt.Errorf("roll pool: %w", err)
		}
		h.recordRoll(ctx, player, args, pool, modifier, rolls)
		return render.PoolLine(player, args, rolls), nil
	}

	store := jsonfile.Load(h.DataPath)
	ch, ok := store.Get(player)
	if !ok {
		ch = character.New(player)
	}

	result := roller.Evaluate(ch, args)
	h.log().Debug("evaluated roll expression",
		zap.String("player", player),
		zap.Int64("pool", result.Pool),
		zap.Stringer("modifier", result.Modifier))

	rolls, err := dice.RollPool(dice.PoolRequest{Pool: result.Pool, Modifier: result.Modifier, Seed: seed})
	if errors.Is(err, dice.ErrNegativePool) {
		return negativePoolReply, nil
	}
	if err != nil {
		return "", fmt.Errorf("roll pool: %w", err)
	}
	h.recordRoll(ctx, player, args, result.Pool, result.Modifier, rolls)
	return render.AttribLine(player, result, rolls), nil
}

// Stats prints or edits the player's character sheet.
func (h *Handler) Stats(ctx context.Context, player string, args []string) (string, error) {
	if len(args) == 0 {
		h.log().Debug("no args supplied to stats command")
		return "", nil
	}

	switch args[0] {
	case "print", "show":
		store := jsonfile.Load(h.DataPath)
		return render.Sheet(store.GetOrCreate(player)), nil
	case "edit":
		return h.edit(player, args, statsUsage, "Got it.")
	}
	return "", nil
}

// Character prints or edits the player's character sheet. It differs from
// Stats only in its usage string and acknowledgment.
func (h *Handler) Character(ctx context.Context, player string, args []string) (string, error) {
	if len(args) == 0 {
		h.log().Debug("no args supplied to character command")
		return "", nil
	}

	switch args[0] {
	case "print":
		store := jsonfile.Load(h.DataPath)
		return render.Sheet(store.GetOrCreate(player)), nil
	case "edit":
		return h.edit(player, args, characterUsage, "👍")
	}
	return "", nil
}

// edit applies a "edit <stat_name> <stat_value>" form: the name is a
// positional string, the value a positional integer, both validated before
// the store is touched.
func (h *Handler) edit(player string, args []string, usage, ack string) (string, error) {
	if len(args) != 3 {
		return usage, nil
	}
	value, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return valueNotANumber, nil
	}

	store := jsonfile.Load(h.DataPath)
	ch := store.GetOrCreate(player)
	ch.SetValue(args[1], value)
	h.log().Debug("stat edited",
		zap.String("player", player),
		zap.String("stat", args[1]),
		zap.Int64("value", value))

	if err := jsonfile.Save(h.DataPath, store); err != nil {
		return "", fmt.Errorf("save character store: %w", err)
	}
	return ack, nil
}

// Merit resolves a merit name to its reference image under the configured
// directory.
func (h *Handler) Merit(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		h.log().Debug("no args supplied to merit command")
		return "", nil
	}

	stub := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	path := filepath.Join(h.MeritsDir, stub+".png")
	h.log().Debug("looking up merit image", zap.String("path", path))
	if _, err := os.Stat(path); err != nil {
		return meritNotFound, nil
	}
	return fmt.Sprintf("%s: %s", name, path), nil
}

// History lists the player's most recent rolls, newest first.
func (h *Handler) History(ctx context.Context, player string, limit int) (string, error) {
	if h.HistoryStore == nil {
		return "Roll history is not enabled.", nil
	}

	entries, err := h.HistoryStore.Recent(ctx, player, limit)
	if err != nil {
		return "", fmt.Errorf("list roll history: %w", err)
	}
	if len(entries) == 0 {
		return "No rolls recorded.", nil
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s | %s | %d dice | %s%s",
			entry.RolledAt.Format("2006-01-02 15:04"), entry.Expression,
			entry.Pool, successCount(entry.Successes), entry.Rolls))
	}
	return strings.Join(lines, "\n"), nil
}

func successCount(count int64) string {
	noun := "successes"
	if count == 1 {
		noun = "success"
	}
	return fmt.Sprintf("%d %s: ", count, noun)
}

// recordRoll appends the roll to the history store when one is configured.
// History is an audit log: a failed append is logged, not surfaced.
func (h *Handler) recordRoll(ctx context.Context, player, expression string, pool int64, modifier dice.Modifier, rolls []dice.Roll) {
	if h.HistoryStore == nil {
		return
	}

	var successes int64
	for _, roll := range rolls {
		if roll.Success() {
			successes++
		}
	}
	entry := history.Entry{
		Character:  player,
		Expression: expression,
		Pool:       pool,
		Modifier:   modifier.String(),
		Rolls:      render.Rolls(rolls),
		Successes:  successes,
		RolledAt:   h.now(),
	}
	if err := h.HistoryStore.Append(ctx, entry); err != nil {
		h.log().Warn("failed to record roll", zap.Error(err))
	}
}

func (h *Handler) log() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

func (h *Handler) seed() (int64, error) {
	if h.Seed != nil {
		return h.Seed()
	}
	return dice.NewSeed()
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
