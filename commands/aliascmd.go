package commands

import (
	"fmt"
	"sort"
	"strings"

	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

// Alias lists the alias table or defines a new alias. Both
// `alias name=value` and `alias name value...` forms are accepted.
func Alias(s *session.Session, args []string) int {
	if len(args) == 1 {
		names := make([]string, 0, len(s.Aliases()))
		for name := range s.Aliases() {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(s.Stdout(), "%s=%s\n", name, s.Aliases()[name])
		}
		return session.CodeSuccess
	}

	joined := strings.Join(args[1:], " ")
	var name, value string
	if idx := strings.Index(joined, "="); idx >= 0 {
		name = strings.TrimSpace(joined[:idx])
		value = strings.Trim(strings.TrimSpace(joined[idx+1:]), `'"`)
	} else {
		name = args[1]
		value = strings.Join(args[2:], " ")
	}

	if name == "" || value == "" {
		fmt.Fprintf(s.Stderr(), "%s: usage: alias name=value\n", args[0])
		return session.CodeFailure
	}

	s.DefineAlias(name, value)
	s.Theme().Println(s.Stdout(), theme.Success, fmt.Sprintf("Alias created: %s -> %s", name, value))
	return session.CodeSuccess
}

// Unalias removes aliases by name.
func Unalias(s *session.Session, args []string) int {
	if len(args) < 2 {
		fmt.Fprintf(s.Stderr(), "%s: missing operand\n", args[0])
		return session.CodeFailure
	}

	for _, name := range args[1:] {
		if _, ok := s.Alias(name); !ok {
			s.Theme().Println(s.Stderr(), theme.Warn, fmt.Sprintf("%s: %s not found", args[0], name))
			continue
		}
		s.RemoveAlias(name)
		s.Theme().Println(s.Stdout(), theme.Success, "Alias removed: "+name)
	}
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Alias), "alias")
	register(BuiltinFunc(Unalias), "unalias")
}
