package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"daffa.dev/daffash/core/session"
)

func TestCat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	sh := newTestShell(t)
	code := Cat(sh.Session, []string{"cat", path, path})
	assert.Equal(t, session.CodeSuccess, code)
	assert.Equal(t, "hello\nhello\n", sh.stdout.String())
}

func TestCatMissingOperand(t *testing.T) {
	sh := newTestShell(t)
	code := Cat(sh.Session, []string{"cat"})
	assert.Equal(t, session.CodeFailure, code)
	assert.Contains(t, sh.stderr.String(), "missing file operand")
}

func TestCatMissingFile(t *testing.T) {
	sh := newTestShell(t)
	code := Cat(sh.Session, []string{"cat", "/no/such/file"})
	assert.Equal(t, session.CodeFailure, code)
}
