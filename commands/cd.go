package commands

import (
	"fmt"
	"os"

	"daffa.dev/daffash/core/session"
)

// Cd is the cd shell builtin. "cd -" toggles to the directory the
// shell was in before the last successful change.
func Cd(s *session.Session, args []string) int {
	var target string
	switch len(args) {
	case 1:
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return session.CodeFailure
		}
		target = home
	case 2:
		target = args[1]
		if target == "-" {
			target = s.PrevDir()
			if target == "" {
				fmt.Fprintf(s.Stderr(), "%s: no previous directory\n", args[0])
				return session.CodeFailure
			}
		}
	default:
		fmt.Fprintf(s.Stderr(), "%s: too many arguments\n", args[0])
		return session.CodeFailure
	}

	if err := s.Chdir(os.ExpandEnv(target)); err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return session.CodeFailure
	}
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Cd), "cd")
}
