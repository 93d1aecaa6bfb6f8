package commands

import (
	"fmt"
	"strings"

	"daffa.dev/daffash/core/session"
)

// Echo writes its arguments separated by single spaces.
func Echo(s *session.Session, args []string) int {
	fmt.Fprintln(s.Stdout(), strings.Join(args[1:], " "))
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Echo), "echo")
}
