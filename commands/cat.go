package commands

import (
	"fmt"
	"io"
	"os"

	"daffa.dev/daffash/core/session"
)

// Cat concatenates the named files to stdout.
func Cat(s *session.Session, args []string) int {
	if len(args) < 2 {
		fmt.Fprintf(s.Stderr(), "%s: missing file operand\n", args[0])
		return session.CodeFailure
	}

	for _, name := range args[1:] {
		fd, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return session.CodeFailure
		}
		_, err = io.Copy(s.Stdout(), fd)
		fd.Close()
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return session.CodeFailure
		}
	}
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Cat), "cat", "type")
}
