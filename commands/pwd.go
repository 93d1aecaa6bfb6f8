package commands

import (
	"fmt"
	"os"

	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

// Pwd prints the current working directory.
func Pwd(s *session.Session, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return session.CodeFailure
	}
	s.Theme().Println(s.Stdout(), theme.Info, wd)
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Pwd), "pwd")
}
