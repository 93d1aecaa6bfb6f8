// Package session holds the mutable state shared across one
// interactive shell run: aliases, exit code, directory history and
// the active theme. The state is passed explicitly to every component
// that needs it; nothing in here is a package global.
package session

import (
	"io"
	"log"
	"os"

	"daffa.dev/daffash/core/history"
	"daffa.dev/daffash/core/theme"
)

// Reserved exit codes recorded on lastExitCode.
const (
	CodeSuccess     = 0
	CodeFailure     = 1   // general execution failure
	CodeParseError  = 2   // malformed quoting
	CodeNotFound    = 127 // command not found
	CodeInterrupted = 130 // interactive interrupt
)

// Persister stores alias and theme mutations outside the session.
// Failures are logged and never fatal.
type Persister interface {
	Persist(aliases map[string]string, themeName string) error
}

// Options configures a new Session.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Aliases    map[string]string
	Theme      string
	Colored    bool
	MaxHistory int

	Persister Persister
}

type Session struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	aliases   map[string]string
	themeName string
	colored   bool
	theme     *theme.Theme

	exitCode int
	prevDir  string

	persister Persister

	// History is the bounded log of accepted lines. The outer read
	// loop appends to it; the history expander only reads it.
	History *history.Log
}

func New(opts Options) *Session {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Aliases == nil {
		opts.Aliases = make(map[string]string)
	}

	s := &Session{
		stdin:     opts.Stdin,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		aliases:   opts.Aliases,
		colored:   opts.Colored,
		persister: opts.Persister,
		History:   history.NewLog(opts.MaxHistory),
	}
	s.setTheme(opts.Theme)
	return s
}

func (s *Session) Stdin() io.Reader  { return s.stdin }
func (s *Session) Stdout() io.Writer { return s.stdout }
func (s *Session) Stderr() io.Writer { return s.stderr }

// ExitCode returns the status of the last attempted execution.
func (s *Session) ExitCode() int {
	return s.exitCode
}

// SetExitCode records the status of an attempted execution. Every
// execution path ends in a call to this, successful or not.
func (s *Session) SetExitCode(code int) {
	s.exitCode = code
}

// Aliases returns the live alias table. Mutate it only through
// DefineAlias and RemoveAlias so changes are persisted.
func (s *Session) Aliases() map[string]string {
	return s.aliases
}

// Alias looks up a single alias.
func (s *Session) Alias(name string) (string, bool) {
	value, ok := s.aliases[name]
	return value, ok
}

// DefineAlias sets name to value and persists the table.
func (s *Session) DefineAlias(name, value string) {
	s.aliases[name] = value
	s.persist()
}

// RemoveAlias deletes name. Removing an absent alias is a no-op.
func (s *Session) RemoveAlias(name string) {
	delete(s.aliases, name)
	s.persist()
}

func (s *Session) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Persist(s.aliases, s.themeName); err != nil {
		log.Printf("could not persist shell state: %v", err)
	}
}

// Theme returns the active render theme.
func (s *Session) Theme() *theme.Theme {
	return s.theme
}

// ThemeName returns the configured palette name.
func (s *Session) ThemeName() string {
	return s.themeName
}

// SetTheme switches the palette and persists the choice.
func (s *Session) SetTheme(name string) bool {
	if !theme.Valid(name) {
		return false
	}
	s.setTheme(name)
	s.persist()
	return true
}

func (s *Session) setTheme(name string) {
	if !theme.Valid(name) {
		name = theme.DefaultName
	}
	s.themeName = name
	s.theme = theme.Lookup(name, s.colored)
}

// PrevDir returns the working directory before the last successful
// directory change. Empty until the first change.
func (s *Session) PrevDir() string {
	return s.prevDir
}

// Chdir changes the working directory. The previous directory is
// recorded only when the change succeeds.
func (s *Session) Chdir(dir string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := os.Chdir(dir); err != nil {
		return err
	}
	s.prevDir = wd
	return nil
}
