package commands

import (
	"fmt"
	"os/exec"

	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

// Which reports how a command name would resolve: builtin first, then
// alias, then the external search path.
func Which(s *session.Session, args []string) int {
	if len(args) < 2 {
		fmt.Fprintf(s.Stderr(), "%s: missing operand\n", args[0])
		return session.CodeFailure
	}

	name := args[1]
	th := s.Theme()

	if _, ok := Lookup(name); ok {
		th.Println(s.Stdout(), theme.Info, name+": shell builtin")
		return session.CodeSuccess
	}

	if value, ok := s.Alias(name); ok {
		th.Println(s.Stdout(), theme.Info, fmt.Sprintf("%s: aliased to '%s'", name, value))
		return session.CodeSuccess
	}

	if path, err := exec.LookPath(name); err == nil {
		th.Println(s.Stdout(), theme.Success, path)
		return session.CodeSuccess
	}

	th.Println(s.Stderr(), theme.Error, name+" not found")
	return session.CodeFailure
}

func init() {
	register(BuiltinFunc(Which), "which", "where")
}
