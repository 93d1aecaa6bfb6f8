package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	shlex "github.com/anmitsu/go-shlex"

	"daffa.dev/daffash/core/history"
)

// ErrMalformedQuoting is returned when a line can't be tokenized,
// e.g. an unterminated quote. The caller reports it and records the
// parse-error exit code without executing anything.
var ErrMalformedQuoting = errors.New("malformed quoting")

// Tokenize splits a raw line into words using shell quoting rules:
// unquoted whitespace separates words, single quotes are literal and
// double quotes allow backslash escapes. Quote characters are
// consumed, not preserved.
func Tokenize(line string) ([]string, error) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuoting, err)
	}
	return tokens, nil
}

// ExpandHistory rewrites history references against the log of
// previously accepted lines. `!!` is the most recent line and `!n`
// the n-th accepted line counting from 1. The second return is true
// when the line was a history reference at all; a reference that
// resolves to nothing (empty log, out of range) yields "" and the
// caller treats it as a silent no-op. This is a pure rewrite, it
// never executes anything.
func ExpandHistory(line string, log *history.Log) (string, bool) {
	if !strings.HasPrefix(line, "!") {
		return line, false
	}

	if line == "!!" {
		last, _ := log.Last()
		return last, true
	}

	n, err := strconv.Atoi(line[1:])
	if err != nil {
		// Not a history reference, e.g. "!foo".
		return line, false
	}
	entry, _ := log.Get(n)
	return entry, true
}

// ResolveAlias rewrites tokens when the command name is aliased. The
// alias value is re-tokenized together with the remaining arguments.
// Exactly one level of expansion is performed: the replacement is
// never checked against the alias table again, so self- and mutually-
// referential aliases terminate.
func ResolveAlias(tokens []string, aliases map[string]string) ([]string, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}
	value, ok := aliases[tokens[0]]
	if !ok {
		return tokens, nil
	}

	return Tokenize(value + " " + strings.Join(tokens[1:], " "))
}

// Pipeline is an ordered sequence of argv-style stages.
type Pipeline [][]string

// Simple reports whether the pipeline is a degenerate single-stage
// invocation, which takes the low-overhead execution path and is the
// only form checked against the builtin table.
func (p Pipeline) Simple() bool {
	return len(p) == 1
}

// SplitPipeline groups tokens into stages at bare "|" tokens.
// Leading, trailing and doubled pipes produce no empty stages; they
// are dropped silently rather than rejected.
func SplitPipeline(tokens []string) Pipeline {
	var out Pipeline
	var stage []string

	for _, token := range tokens {
		if token == "|" {
			if len(stage) > 0 {
				out = append(out, stage)
				stage = nil
			}
			continue
		}
		stage = append(stage, token)
	}
	if len(stage) > 0 {
		out = append(out, stage)
	}

	return out
}

// ExitRequested reports whether the resolved command name is a
// termination keyword. Checked after alias resolution and before any
// dispatch.
func ExitRequested(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	switch tokens[0] {
	case "exit", "quit":
		return true
	}
	return false
}
