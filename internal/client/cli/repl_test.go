package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error      { return f.record("whoami") }
func (f *fakeExec) Nearby(ctx context.Context) error      { return f.record("nearby") }
func (f *fakeExec) Restaurants(ctx context.Context) error { return f.record("restaurants") }
func (f *fakeExec) Feed(ctx context.Context) error        { return f.record("feed") }
func (f *fakeExec) Visits(ctx context.Context) error      { return f.record("visits") }
func (f *fakeExec) AddVisit(ctx context.Context) error    { return f.record("addvisit") }
func (f *fakeExec) DelVisit(ctx context.Context) error    { return f.record("delvisit") }
func (f *fakeExec) Profile(ctx context.Context) error     { return f.record("profile") }
func (f *fakeExec) Friends(ctx context.Context) error     { return f.record("friends") }
func (f *fakeExec) Requests(ctx context.Context) error    { return f.record("requests") }
func (f *fakeExec) AddFriend(ctx context.Context) error   { return f.record("addfriend") }
func (f *fakeExec) Answer(ctx context.Context) error      { return f.record("answer") }
func (f *fakeExec) Unfriend(ctx context.Context) error    { return f.record("unfriend") }
func (f *fakeExec) FindUsers(ctx context.Context) error   { return f.record("findusers") }

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"login",
		"feed",
		"nearby",
		"addvisit",
		"friends",
		"whoami",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"login", "feed", "nearby", "addvisit", "friends", "whoami", "logout"}
	assert.Equal(t, want, exec.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("feed\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	assert.Equal(t, []string{"feed"}, exec.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("frobnicate\nexit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command:")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("help\nlogin\nhelp\nquit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	var sawAnon, sawAuthed bool
	for _, l := range *lines {
		if strings.Contains(l, "register, login, exit") {
			sawAnon = true
		}
		if strings.Contains(l, "addvisit") {
			sawAuthed = true
		}
	}
	assert.True(t, sawAnon)
	assert.True(t, sawAuthed)
}

func TestRunREPL_SkipsBlankLines(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("\n   \nvisits\nexit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	assert.Equal(t, []string{"visits"}, exec.calls)
}
