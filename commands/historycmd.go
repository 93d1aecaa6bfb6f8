package commands

import (
	"fmt"
	"strconv"

	"daffa.dev/daffash/core/session"
)

// History displays the command log with absolute line numbers, the
// same numbers `!n` expansion resolves against.
func History(s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "history [-c] [N]",
		Short: "Display or manipulate the history list.",
	}
	clear := cmd.Flags().Bool('c', "clear the history by deleting all entries")

	return cmd.Run(s, args, func(rest []string) int {
		if *clear {
			s.History.Clear()
			return session.CodeSuccess
		}

		limit := s.History.Len()
		if len(rest) > 0 {
			n, err := strconv.Atoi(rest[0])
			if err != nil || n < 0 {
				fmt.Fprintf(s.Stderr(), "history: %s: numeric argument required\n", rest[0])
				return session.CodeFailure
			}
			limit = n
		}

		cutoff := s.History.Len() - limit
		s.History.Each(func(n int, line string) {
			if n <= cutoff {
				return
			}
			fmt.Fprintf(s.Stdout(), "% 5d  %s\n", n, line)
		})
		return session.CodeSuccess
	})
}

func init() {
	register(BuiltinFunc(History), "history")
}
