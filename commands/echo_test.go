package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"daffa.dev/daffash/core/session"
)

func TestEcho(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no args", []string{"echo"}, "\n"},
		{"words", []string{"echo", "hello", "world"}, "hello world\n"},
		{"preserves spacing inside args", []string{"echo", "a  b"}, "a  b\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sh := newTestShell(t)
			code := Echo(sh.Session, tc.args)
			assert.Equal(t, session.CodeSuccess, code)
			assert.Equal(t, tc.expected, sh.stdout.String())
		})
	}
}
