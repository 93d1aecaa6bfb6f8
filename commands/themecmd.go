package commands

import (
	"fmt"
	"strings"

	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

// ThemeCmd lists the available palettes or switches to a new one.
// Switching persists the choice through the session.
func ThemeCmd(s *session.Session, args []string) int {
	switch len(args) {
	case 1:
		fmt.Fprintln(s.Stdout(), "Available themes:", strings.Join(theme.Names(), ", "))
		fmt.Fprintln(s.Stdout(), "Current theme:", s.ThemeName())
		return session.CodeSuccess
	case 2:
		if !s.SetTheme(args[1]) {
			s.Theme().Println(s.Stderr(), theme.Error, "Unknown theme: "+args[1])
			return session.CodeFailure
		}
		s.Theme().Println(s.Stdout(), theme.Success, "Theme changed to: "+args[1])
		return session.CodeSuccess
	default:
		fmt.Fprintf(s.Stderr(), "%s: too many arguments\n", args[0])
		return session.CodeFailure
	}
}

func init() {
	register(BuiltinFunc(ThemeCmd), "theme")
}
