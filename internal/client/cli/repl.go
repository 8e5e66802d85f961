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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Nearby(ctx context.Context) error
	Restaurants(ctx context.Context) error
	Feed(ctx context.Context) error
	Visits(ctx context.Context) error
	AddVisit(ctx context.Context) error
	DelVisit(ctx context.Context) error
	Profile(ctx context.Context) error
	Friends(ctx context.Context) error
	Requests(ctx context.Context) error
	AddFriend(ctx context.Context) error
	Answer(ctx context.Context) error
	Unfriend(ctx context.Context) error
	FindUsers(ctx context.Context) error
}

// runREPL starts the read–eval–print loop. It reads a line from the
// provided scanner, parses the first token as the command, and dispatches
// to methods on 'a'. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("forked %s> ", statusFn()))
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
				printlnFn("Available commands: whoami, nearby, restaurants, feed, visits, addvisit, delvisit, profile, friends, requests, addfriend, answer, unfriend, findusers, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "nearby":
			_ = a.Nearby(ctx)

		case "restaurants":
			_ = a.Restaurants(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "visits":
			_ = a.Visits(ctx)

		case "addvisit":
			_ = a.AddVisit(ctx)

		case "delvisit":
			_ = a.DelVisit(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "friends":
			_ = a.Friends(ctx)

		case "requests":
			_ = a.Requests(ctx)

		case "addfriend":
			_ = a.AddFriend(ctx)

		case "answer":
			_ = a.Answer(ctx)

		case "unfriend":
			_ = a.Unfriend(ctx)

		case "findusers":
			_ = a.FindUsers(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
