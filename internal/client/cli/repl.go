package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	OpenLogin(ctx context.Context) error
	OpenSignup(ctx context.Context) error
	Profile(ctx context.Context) error
	Feed(ctx context.Context) error
	Chat(ctx context.Context) error
	Connections(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the interactive loop for the DevTinder client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while logged out: home, login, signup, help, exit.
// Commands while logged in: home, profile, feed, chat, connections, whoami,
// logout, help, exit. Visiting a protected view while logged out lands on
// the login form instead.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("devtinder %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, profile, feed, chat, connections, whoami, logout, exit")
			} else {
				printlnFn("Available commands: home, login, signup, exit")
			}

		case "home":
			_ = a.Home(ctx)

		case "login":
			_ = a.OpenLogin(ctx)

		case "signup":
			_ = a.OpenSignup(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "connections":
			_ = a.Connections(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
