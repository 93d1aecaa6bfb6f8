package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePersister struct {
	calls   int
	aliases map[string]string
	theme   string
	err     error
}

func (f *fakePersister) Persist(aliases map[string]string, themeName string) error {
	f.calls++
	f.aliases = aliases
	f.theme = themeName
	return f.err
}

func TestAliasMutationPersists(t *testing.T) {
	p := &fakePersister{}
	s := New(Options{Persister: p})

	s.DefineAlias("ll", "ls -l")
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, "ls -l", p.aliases["ll"])

	value, ok := s.Alias("ll")
	assert.True(t, ok)
	assert.Equal(t, "ls -l", value)

	s.RemoveAlias("ll")
	assert.Equal(t, 2, p.calls)
	_, ok = s.Alias("ll")
	assert.False(t, ok)

	// Removing again is idempotent and still persists.
	s.RemoveAlias("ll")
	assert.Equal(t, 3, p.calls)
}

func TestPersistFailureIsNotFatal(t *testing.T) {
	p := &fakePersister{err: errors.New("disk full")}
	s := New(Options{Persister: p})

	s.DefineAlias("gs", "git status")

	// The mutation sticks even though persistence failed.
	value, ok := s.Alias("gs")
	assert.True(t, ok)
	assert.Equal(t, "git status", value)
}

func TestSetTheme(t *testing.T) {
	p := &fakePersister{}
	s := New(Options{Theme: "neon", Persister: p})

	assert.True(t, s.SetTheme("dracula"))
	assert.Equal(t, "dracula", s.ThemeName())
	assert.Equal(t, "dracula", p.theme)

	assert.False(t, s.SetTheme("no-such-theme"))
	assert.Equal(t, "dracula", s.ThemeName())
}

func TestUnknownThemeFallsBack(t *testing.T) {
	s := New(Options{Theme: "bogus"})
	assert.Equal(t, "neon", s.ThemeName())
}

func TestExitCode(t *testing.T) {
	s := New(Options{})
	assert.Equal(t, CodeSuccess, s.ExitCode())

	s.SetExitCode(CodeNotFound)
	assert.Equal(t, 127, s.ExitCode())
}

func TestChdirTogglesPrevDir(t *testing.T) {
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(origWd)

	a := t.TempDir()
	b := t.TempDir()

	s := New(Options{})
	if err := s.Chdir(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Chdir(b); err != nil {
		t.Fatal(err)
	}

	// Toggle back via the recorded previous directory.
	prev := s.PrevDir()
	if err := s.Chdir(prev); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, evalSymlinks(t, a), evalSymlinks(t, wd))
}

func TestFailedChdirKeepsPrevDir(t *testing.T) {
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(origWd)

	a := t.TempDir()
	s := New(Options{})
	if err := s.Chdir(a); err != nil {
		t.Fatal(err)
	}
	before := s.PrevDir()

	err = s.Chdir("/no/such/directory/anywhere")
	assert.NotNil(t, err)
	assert.Equal(t, before, s.PrevDir())
}

// evalSymlinks normalizes paths because Getwd on darwin reports
// /private-prefixed locations for temp dirs.
func evalSymlinks(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
