package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
)

type stubExec struct {
	loggedIn bool
	calls    []string
	errOn    string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	if s.errOn == name {
		return errors.New("boom")
	}
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Add(ctx context.Context) error      { return s.record("add") }
func (s *stubExec) List(ctx context.Context) error     { return s.record("list") }
func (s *stubExec) Show(ctx context.Context) error     { return s.record("show") }
func (s *stubExec) Logout(ctx context.Context) error   { return s.record("logout") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runWithInput(t *testing.T, a execIface, input string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), a, func() string { return "test" }, scanner)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	_ = captureOutput(t)

	s := &stubExec{}
	runWithInput(t, s, "register\nlogin\nlist\nexit\n")

	want := []string{"register", "login", "list"}
	if len(s.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v want %v", s.calls, want)
	}
	for i := range want {
		if s.calls[i] != want[i] {
			t.Fatalf("call %d: got %q want %q", i, s.calls[i], want[i])
		}
	}
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)

	runWithInput(t, &stubExec{}, "frobnicate\nquit\n")

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Unknown command: frobnicate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown command not reported, output: %v", *lines)
	}
}

func TestREPL_HandlerErrorIsPrinted(t *testing.T) {
	lines := captureOutput(t)

	runWithInput(t, &stubExec{errOn: "list"}, "list\nexit\n")

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Error: boom") {
			found = true
		}
	}
	if !found {
		t.Fatalf("handler error not printed, output: %v", *lines)
	}
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)

	runWithInput(t, &stubExec{loggedIn: false}, "help\nexit\n")
	runWithInput(t, &stubExec{loggedIn: true}, "help\nexit\n")

	var sawLoggedOut, sawLoggedIn bool
	for _, l := range *lines {
		if strings.Contains(l, "register, login") {
			sawLoggedOut = true
		}
		if strings.Contains(l, "add, list") {
			sawLoggedIn = true
		}
	}
	if !sawLoggedOut || !sawLoggedIn {
		t.Fatalf("help output missing variants, output: %v", *lines)
	}
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	_ = captureOutput(t)

	// no trailing exit; the scanner just runs out of input
	runWithInput(t, &stubExec{}, "list\n")
}
