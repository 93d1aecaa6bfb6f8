package commands

import (
	"fmt"
	"strings"

	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

type helpEntry struct {
	use   string
	short string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{"File Operations", []helpEntry{
		{"ls [path]", "List directory contents"},
		{"cd [path]", "Change directory"},
		{"pwd", "Print working directory"},
		{"mkdir <dir>", "Create directory"},
		{"touch <file>", "Create file or update timestamp"},
		{"rm [-rf] <file>", "Remove file/directory"},
		{"cp <src> <dst>", "Copy file"},
		{"mv <src> <dst>", "Move/rename file"},
		{"cat <file>", "Display file contents"},
	}},
	{"System", []helpEntry{
		{"clear/cls", "Clear screen"},
		{"echo <text>", "Print text"},
		{"env", "Show environment variables"},
		{"export VAR=val", "Set environment variable"},
		{"sysinfo", "Show system information"},
		{"history [-c]", "Show command history"},
		{"which <name>", "Locate a command"},
		{"date [-u]", "Show date and time"},
	}},
	{"Shell Features", []helpEntry{
		{"alias [name=cmd]", "Create/list aliases"},
		{"unalias <name>", "Remove alias"},
		{"theme [name]", "Change color theme"},
		{"help", "Show this help"},
		{"exit/quit", "Exit shell"},
	}},
	{"Advanced", []helpEntry{
		{"cmd1 | cmd2", "Pipeline commands"},
		{"!! / !n", "Repeat last / n-th history command"},
		{"cd -", "Go to previous directory"},
		{"$VAR", "Use environment variables"},
	}},
}

// Help prints the command reference.
func Help(s *session.Session, args []string) int {
	th := s.Theme()
	w := s.Stdout()
	rule := strings.Repeat("═", 70)

	fmt.Fprintln(w)
	th.Println(w, theme.Accent, rule)
	th.Println(w, theme.Info, theme.Version+" - Command Reference")
	th.Println(w, theme.Accent, rule)
	fmt.Fprintln(w)

	for _, section := range helpSections {
		th.Println(w, theme.Accent, section.title+":")
		for _, entry := range section.entries {
			fmt.Fprintf(w, "  %s%s\n",
				th.Sprintf(theme.Success, "%-25s", entry.use),
				th.Sprintf(theme.Muted, "%s", entry.short))
		}
		fmt.Fprintln(w)
	}

	th.Println(w, theme.Info, "Themes: "+strings.Join(theme.Names(), ", "))
	th.Println(w, theme.Muted, "Builtins: "+strings.Join(Names(), ", "))
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Help), "help")
}
