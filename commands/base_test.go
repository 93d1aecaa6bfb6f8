package commands

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"daffa.dev/daffash/core/session"
)

// testShell is a session wired to buffers for output assertions.
type testShell struct {
	*session.Session
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestShell(t *testing.T) *testShell {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &testShell{
		Session: session.New(session.Options{
			Stdout: stdout,
			Stderr: stderr,
			Theme:  "classic",
		}),
		stdout: stdout,
		stderr: stderr,
	}
}

func TestAllBuiltins(t *testing.T) {
	for name, builtin := range AllBuiltins {
		t.Run(name, func(t *testing.T) {
			if builtin == nil {
				t.Fatal("nil builtin", name)
			}
		})
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "cd")
	assert.Contains(t, names, "alias")
}

func TestLookup(t *testing.T) {
	_, ok := Lookup("pwd")
	assert.True(t, ok)

	_, ok = Lookup("no-such-builtin")
	assert.False(t, ok)

	// exit and quit terminate the session before dispatch; they must
	// never appear in the table.
	_, ok = Lookup("exit")
	assert.False(t, ok)
	_, ok = Lookup("quit")
	assert.False(t, ok)
}

func TestSimpleCommandHelp(t *testing.T) {
	sh := newTestShell(t)

	cmd := &SimpleCommand{Use: "probe [-x]", Short: "A probe."}
	cmd.Flags().Bool('x', "example flag")

	code := cmd.Run(sh.Session, []string{"probe", "--help"}, func([]string) int {
		t.Fatal("callback must not run when help is requested")
		return 1
	})
	assert.Equal(t, session.CodeSuccess, code)
	assert.Contains(t, sh.stdout.String(), "usage: probe [-x]")
}

func TestSimpleCommandBadFlag(t *testing.T) {
	sh := newTestShell(t)

	cmd := &SimpleCommand{Use: "probe", Short: "A probe."}
	code := cmd.Run(sh.Session, []string{"probe", "-z"}, func([]string) int {
		t.Fatal("callback must not run on a flag error")
		return 0
	})
	assert.Equal(t, session.CodeFailure, code)
	assert.Contains(t, sh.stderr.String(), "probe")
}
