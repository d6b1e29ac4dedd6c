package commands

import (
	"context"
	"strings"
	"testing"
)

// TestDispatchRoutesCommands ensures prefixed lines route to their handler
// case-insensitively.
func TestDispatchRoutesCommands(t *testing.T) {
	h := testHandler(t, 7)

	reply, err := h.Dispatch(context.Background(), "Paul", "!ROLL 4")
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if !strings.HasPrefix(reply, "Paul rolled 4 dice and got ") {
		t.Fatalf("unexpected roll reply: %q", reply)
	}

	reply, err = h.Dispatch(context.Background(), "Paul", "!stats edit strength 3")
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if reply != "Got it." {
		t.Fatalf("reply = %q, want %q", reply, "Got it.")
	}

	reply, err = h.Dispatch(context.Background(), "Paul", "!help")
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if !strings.Contains(reply, "Chronicles of Darkness dice roller") {
		t.Fatalf("unexpected help reply: %q", reply)
	}
}

// TestDispatchIgnoresNoise ensures unprefixed lines and unknown commands
// produce no reply.
func TestDispatchIgnoresNoise(t *testing.T) {
	h := testHandler(t, 1)

	for _, line := range []string{"hello there", "!unknown 4", "!", "   "} {
		reply, err := h.Dispatch(context.Background(), "Paul", line)
		if err != nil {
			t.Fatalf("Dispatch(%q) returned error: %v", line, err)
		}
		if reply != "" {
			t.Fatalf("Dispatch(%q) = %q, want empty", line, reply)
		}
	}
}
