package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"daffa.dev/daffash/core/session"
)

func TestAliasDefineEqualsForm(t *testing.T) {
	sh := newTestShell(t)

	code := Alias(sh.Session, []string{"alias", "ll=ls -l"})
	assert.Equal(t, session.CodeSuccess, code)

	value, ok := sh.Alias("ll")
	assert.True(t, ok)
	assert.Equal(t, "ls -l", value)
}

func TestAliasDefineWordForm(t *testing.T) {
	sh := newTestShell(t)

	code := Alias(sh.Session, []string{"alias", "gs", "git", "status"})
	assert.Equal(t, session.CodeSuccess, code)

	value, ok := sh.Alias("gs")
	assert.True(t, ok)
	assert.Equal(t, "git status", value)
}

func TestAliasStripsQuotes(t *testing.T) {
	sh := newTestShell(t)

	code := Alias(sh.Session, []string{"alias", `ll='ls -l'`})
	assert.Equal(t, session.CodeSuccess, code)

	value, _ := sh.Alias("ll")
	assert.Equal(t, "ls -l", value)
}

func TestAliasList(t *testing.T) {
	sh := newTestShell(t)
	sh.DefineAlias("b", "bravo")
	sh.DefineAlias("a", "alpha")

	code := Alias(sh.Session, []string{"alias"})
	assert.Equal(t, session.CodeSuccess, code)
	assert.Equal(t, "a=alpha\nb=bravo\n", sh.stdout.String())
}

func TestAliasMissingValue(t *testing.T) {
	sh := newTestShell(t)

	code := Alias(sh.Session, []string{"alias", "broken="})
	assert.Equal(t, session.CodeFailure, code)
}

func TestUnalias(t *testing.T) {
	sh := newTestShell(t)
	sh.DefineAlias("ll", "ls -l")

	code := Unalias(sh.Session, []string{"unalias", "ll"})
	assert.Equal(t, session.CodeSuccess, code)

	_, ok := sh.Alias("ll")
	assert.False(t, ok)
}

func TestUnaliasMissing(t *testing.T) {
	sh := newTestShell(t)

	// Unknown names warn but do not fail the command.
	code := Unalias(sh.Session, []string{"unalias", "nope"})
	assert.Equal(t, session.CodeSuccess, code)
	assert.Contains(t, sh.stderr.String(), "nope not found")
}

func TestUnaliasNoArgs(t *testing.T) {
	sh := newTestShell(t)
	code := Unalias(sh.Session, []string{"unalias"})
	assert.Equal(t, session.CodeFailure, code)
}
