package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) ListBillings(ctx context.Context) error {
	f.calls = append(f.calls, "billings")
	return nil
}
func (f *fakeExec) AddBilling(ctx context.Context) error {
	f.calls = append(f.calls, "addbilling")
	return nil
}
func (f *fakeExec) DeleteBilling(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delbilling")
	f.arg = id
	return nil
}
func (f *fakeExec) ListExpenses(ctx context.Context) error {
	f.calls = append(f.calls, "expenses")
	return nil
}
func (f *fakeExec) AddExpense(ctx context.Context) error {
	f.calls = append(f.calls, "addexpense")
	return nil
}
func (f *fakeExec) DeleteExpense(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delexpense")
	f.arg = id
	return nil
}
func (f *fakeExec) ListUsers(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}
func (f *fakeExec) AddUser(ctx context.Context) error {
	f.calls = append(f.calls, "adduser")
	return nil
}
func (f *fakeExec) DeleteUser(ctx context.Context, id string) error {
	f.calls = append(f.calls, "deluser")
	f.arg = id
	return nil
}
func (f *fakeExec) ChangePassword(ctx context.Context) error {
	f.calls = append(f.calls, "passwd")
	return nil
}
func (f *fakeExec) Summary(ctx context.Context) error {
	f.calls = append(f.calls, "summary")
	return nil
}
func (f *fakeExec) Sync(ctx context.Context) error { f.calls = append(f.calls, "sync"); return nil }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"billings",
		"login",
		"help",
		"billings",
		"addexpense",
		"delbilling 123",
		"summary",
		"sync",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false, admin: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "billings", "addexpense", "delbilling", "summary", "sync"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("commands order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}
	if exec.arg != "123" {
		t.Fatalf("expected delbilling arg 123, got %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("delbilling\ndeluser\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_LoggedOutCommandsRejected(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("billings\nsummary\nexit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls before login: %v", exec.calls)
	}
}
