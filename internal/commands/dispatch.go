package commands

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const historyLimit = 10

// Dispatch routes a chat-style "!command args" line to its handler and
// returns the reply text. Command matching is case-insensitive. Lines
// without the prefix and unknown commands are ignored with an empty reply.
func (h *Handler) Dispatch(ctx context.Context, player, line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "!") {
		return "", nil
	}

	rest := strings.TrimSpace(trimmed[1:])
	command := rest
	args := ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		command, args = rest[:i], strings.TrimSpace(rest[i+1:])
	}

	switch strings.ToLower(command) {
	case "roll":
		return h.Roll(ctx, player, args)
	case "stats":
		return h.Stats(ctx, player, strings.Fields(args))
	case "character":
		return h.Character(ctx, player, strings.Fields(args))
	case "help":
		return h.Help(), nil
	case "merit":
		return h.Merit(args)
	case "history":
		return h.History(ctx, player, historyLimit)
	}

	h.log().Debug("ignoring unknown command", zap.String("command", command))
	return "", nil
}
