package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
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
func (f *fakeExec) Browse(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "browse")
	f.args = args
	return nil
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "show")
	f.args = args
	return nil
}
func (f *fakeExec) Trending(ctx context.Context) error {
	f.calls = append(f.calls, "trending")
	return nil
}
func (f *fakeExec) Create(ctx context.Context) error {
	f.calls = append(f.calls, "create")
	return nil
}
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "edit")
	f.args = args
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "delete")
	f.args = args
	return nil
}
func (f *fakeExec) Favorite(ctx context.Context, args []string, favorite bool) error {
	if favorite {
		f.calls = append(f.calls, "fav")
	} else {
		f.calls = append(f.calls, "unfav")
	}
	f.args = args
	return nil
}
func (f *fakeExec) Favorites(ctx context.Context) error {
	f.calls = append(f.calls, "favorites")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"browse cuisine=Thai",
		"show 123",
		"trending",
		"fav 123",
		"favorites",
		"whoami",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "browse", "show", "trending", "fav", "favorites", "whoami"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgumentsPassedThrough(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("browse cuisine=Thai tags=spicy\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.args) != 2 || exec.args[0] != "cuisine=Thai" || exec.args[1] != "tags=spicy" {
		t.Fatalf("filter args not forwarded: %v", exec.args)
	}
}

func TestRunREPL_BlankAndUnknownLinesCallNothing(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n   \nfoobar\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_UnfavDispatchesDirection(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("unfav 9\nexit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 || exec.calls[0] != "unfav" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if len(exec.args) != 1 || exec.args[0] != "9" {
		t.Fatalf("id not forwarded: %v", exec.args)
	}
}
