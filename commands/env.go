package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"daffa.dev/daffash/core/session"
)

// Env lists the environment, or sets NAME=VALUE pairs given as
// arguments. export and set are the same operation here.
func Env(s *session.Session, args []string) int {
	if len(args) == 1 {
		environ := os.Environ()
		sort.Strings(environ)
		for _, kv := range environ {
			fmt.Fprintln(s.Stdout(), kv)
		}
		return session.CodeSuccess
	}

	for _, arg := range args[1:] {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			continue
		}
		if err := os.Setenv(parts[0], parts[1]); err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return session.CodeFailure
		}
	}
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Env), "env", "export", "set")
}
