package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/minilearn/internal/catalog"
	"github.com/dmitrijs2005/minilearn/internal/logging"
	"github.com/dmitrijs2005/minilearn/internal/storage"
)

// newTestApp builds an App over a memory store that reads its input from
// the given lines. Passwords are read from the same input and the login
// delay is recorded instead of slept.
func newTestApp(t *testing.T, lines ...string) (*App, *bytes.Buffer, *storage.MemoryStore, *[]time.Duration) {
	t.Helper()

	origTerm, origSleep := isTerminal, sleepFn
	isTerminal = func(int) bool { return false }
	var slept []time.Duration
	sleepFn = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return ctx.Err()
	}
	t.Cleanup(func() {
		isTerminal = origTerm
		sleepFn = origSleep
	})

	input := strings.Join(lines, "\n")
	if input != "" {
		input += "\n"
	}

	mem := storage.NewMemoryStore()
	out := &bytes.Buffer{}
	a := newApp(mem, catalog.Default(), logging.Nop(), bufio.NewReader(strings.NewReader(input)), out)
	a.loginDelay = 800 * time.Millisecond
	return a, out, mem, &slept
}

// loginAs signs a user in directly, bypassing the prompts.
func loginAs(t *testing.T, a *App, email, password string) {
	t.Helper()
	if _, err := a.sessions.Login(context.Background(), email, password); err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
}
