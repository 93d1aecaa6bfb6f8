package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"daffa.dev/daffash/core/history"
)

func TestTokenizeRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected []string
	}{
		{"plain words", "ls -l /tmp", []string{"ls", "-l", "/tmp"}},
		{"extra whitespace", "  ls   -l  ", []string{"ls", "-l"}},
		{"single quotes", "echo 'hello world'", []string{"echo", "hello world"}},
		{"double quotes", `echo "hello world"`, []string{"echo", "hello world"}},
		{"escaped quote in double quotes", `echo "say \"hi\""`, []string{"echo", `say "hi"`}},
		{"mixed atoms", `grep 'a b' "c d" e`, []string{"grep", "a b", "c d", "e"}},
		{"empty quoted token", `echo ''`, []string{"echo", ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.line)
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, tokens)
		})
	}
}

func TestTokenizeMalformedQuoting(t *testing.T) {
	for _, line := range []string{`echo 'unterminated`, `echo "unterminated`} {
		t.Run(line, func(t *testing.T) {
			_, err := Tokenize(line)
			assert.True(t, errors.Is(err, ErrMalformedQuoting))
		})
	}
}

func TestExpandHistory(t *testing.T) {
	log := history.NewLog(10)
	log.Add("ls -l")
	log.Add("pwd")

	t.Run("bang bang", func(t *testing.T) {
		line, ok := ExpandHistory("!!", log)
		assert.True(t, ok)
		assert.Equal(t, "pwd", line)
	})

	t.Run("by index", func(t *testing.T) {
		line, ok := ExpandHistory("!1", log)
		assert.True(t, ok)
		assert.Equal(t, "ls -l", line)
	})

	t.Run("not a reference", func(t *testing.T) {
		line, ok := ExpandHistory("ls", log)
		assert.False(t, ok)
		assert.Equal(t, "ls", line)

		line, ok = ExpandHistory("!foo", log)
		assert.False(t, ok)
		assert.Equal(t, "!foo", line)
	})
}

func TestExpandHistoryBounds(t *testing.T) {
	log := history.NewLog(10)
	log.Add("ls")

	// All of these resolve to nothing to execute.
	for _, line := range []string{"!0", "!-1", "!2", "!99"} {
		t.Run(line, func(t *testing.T) {
			expanded, ok := ExpandHistory(line, log)
			assert.True(t, ok)
			assert.Equal(t, "", expanded)
		})
	}

	t.Run("empty log", func(t *testing.T) {
		expanded, ok := ExpandHistory("!!", history.NewLog(10))
		assert.True(t, ok)
		assert.Equal(t, "", expanded)
	})
}

func TestResolveAlias(t *testing.T) {
	aliases := map[string]string{"ll": "ls -l"}

	tokens, err := ResolveAlias([]string{"ll", "/tmp"}, aliases)
	assert.Nil(t, err)
	assert.Equal(t, []string{"ls", "-l", "/tmp"}, tokens)

	tokens, err = ResolveAlias([]string{"ls", "/tmp"}, aliases)
	assert.Nil(t, err)
	assert.Equal(t, []string{"ls", "/tmp"}, tokens)
}

func TestResolveAliasNotRecursive(t *testing.T) {
	// Mutually-referential aliases expand exactly one level.
	aliases := map[string]string{"a": "b", "b": "a"}

	tokens, err := ResolveAlias([]string{"a"}, aliases)
	assert.Nil(t, err)
	assert.Equal(t, []string{"b"}, tokens)

	tokens, err = ResolveAlias([]string{"b"}, aliases)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a"}, tokens)
}

func TestResolveAliasMalformedValue(t *testing.T) {
	aliases := map[string]string{"bad": "echo 'oops"}

	_, err := ResolveAlias([]string{"bad"}, aliases)
	assert.True(t, errors.Is(err, ErrMalformedQuoting))
}

func TestResolveAliasEmptyTokens(t *testing.T) {
	tokens, err := ResolveAlias(nil, map[string]string{"a": "b"})
	assert.Nil(t, err)
	assert.Empty(t, tokens)
}

func TestSplitPipeline(t *testing.T) {
	cases := []struct {
		name     string
		tokens   []string
		expected Pipeline
	}{
		{"three stages", []string{"a", "|", "b", "|", "c"}, Pipeline{{"a"}, {"b"}, {"c"}}},
		{"leading and trailing pipes", []string{"|", "a", "|"}, Pipeline{{"a"}}},
		{"doubled pipe", []string{"a", "|", "|", "b"}, Pipeline{{"a"}, {"b"}}},
		{"no pipes", []string{"ls", "-l"}, Pipeline{{"ls", "-l"}}},
		{"args kept with their stage", []string{"ls", "-l", "|", "wc", "-c"}, Pipeline{{"ls", "-l"}, {"wc", "-c"}}},
		{"only pipes", []string{"|", "|"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitPipeline(tc.tokens))
		})
	}
}

func TestPipelineSimple(t *testing.T) {
	assert.True(t, SplitPipeline([]string{"ls"}).Simple())
	assert.False(t, SplitPipeline([]string{"ls", "|", "wc"}).Simple())
}

func TestExitRequested(t *testing.T) {
	assert.True(t, ExitRequested([]string{"exit"}))
	assert.True(t, ExitRequested([]string{"quit", "now"}))
	assert.False(t, ExitRequested([]string{"exits"}))
	assert.False(t, ExitRequested(nil))
}
