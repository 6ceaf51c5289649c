package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListBillings(ctx context.Context) error
	AddBilling(ctx context.Context) error
	DeleteBilling(ctx context.Context, id string) error
	ListExpenses(ctx context.Context) error
	AddExpense(ctx context.Context) error
	DeleteExpense(ctx context.Context, id string) error
	ListUsers(ctx context.Context) error
	AddUser(ctx context.Context) error
	DeleteUser(ctx context.Context, id string) error
	ChangePassword(ctx context.Context) error
	Summary(ctx context.Context) error
	Sync(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lava-rapido %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: login, exit")
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			if a.isAdmin() {
				printlnFn("Available commands: billings, addbilling, delbilling, expenses, addexpense, delexpense, users, adduser, deluser, passwd, summary, sync, logout, exit")
			} else {
				printlnFn("Available commands: billings, addbilling, expenses, addexpense, passwd, sync, logout, exit")
			}

		case "billings":
			_ = a.ListBillings(ctx)

		case "addbilling":
			_ = a.AddBilling(ctx)

		case "delbilling":
			if len(args) == 0 {
				printlnFn("Usage: delbilling <id>")
				continue
			}
			_ = a.DeleteBilling(ctx, args[0])

		case "expenses":
			_ = a.ListExpenses(ctx)

		case "addexpense":
			_ = a.AddExpense(ctx)

		case "delexpense":
			if len(args) == 0 {
				printlnFn("Usage: delexpense <id>")
				continue
			}
			_ = a.DeleteExpense(ctx, args[0])

		case "users":
			_ = a.ListUsers(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "deluser":
			if len(args) == 0 {
				printlnFn("Usage: deluser <id>")
				continue
			}
			_ = a.DeleteUser(ctx, args[0])

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "sync":
			_ = a.Sync(ctx)

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

func (a *App) Main(ctx context.Context) {
	printlnFn("Lava Rapido CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.showLogin, scanner)
}

func (a *App) showLogin() string {
	if a.currentUser == nil {
		return "(not logged in)"
	}
	return a.currentUser.Username
}
