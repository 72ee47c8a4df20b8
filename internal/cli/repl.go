package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Home(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	Progress(ctx context.Context) error
	Reset(ctx context.Context) error
	Wipe(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF, on a cancelled context, or when the user types
// "exit" or "quit".
//
//	Always:
//	  - help              — show available commands
//	  - home | list       — list courses (login screen when anonymous)
//	  - show <id>         — course details
//	  - complete <id>     — mark a course as completed
//	  - progress          — completion summary
//	  - exit | quit       — leave the program
//
//	Not logged in:
//	  - login, signup
//
//	Logged in:
//	  - whoami, logout, reset, wipe
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("learn%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: home (list), show <id>, complete <id>, progress, reset, whoami, logout, wipe, exit")
			} else {
				printlnFn("Available commands: login, signup, home (list), show <id>, complete <id>, progress, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "signup", "register":
			cmdErr = a.Signup(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "home", "list", "l":
			cmdErr = a.Home(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			cmdErr = a.Show(ctx, args[0])

		case "complete":
			if len(args) == 0 {
				printlnFn("Usage: complete <id>")
				continue
			}
			cmdErr = a.Complete(ctx, args[0])

		case "progress":
			cmdErr = a.Progress(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "wipe":
			cmdErr = a.Wipe(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
