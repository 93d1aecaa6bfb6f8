package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

// Ls lists a directory with themed decorations: directories get a
// trailing slash, executables a star.
func Ls(s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "ls [-a] [PATH]",
		Short: "List directory contents.",
	}
	all := cmd.Flags().Bool('a', "do not hide dotfiles")

	return cmd.Run(s, args, func(rest []string) int {
		path := "."
		if len(rest) > 0 {
			path = rest[0]
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return session.CodeFailure
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

		th := s.Theme()
		for _, entry := range entries {
			name := entry.Name()
			if !*all && len(name) > 0 && name[0] == '.' {
				continue
			}

			switch {
			case entry.IsDir():
				th.Println(s.Stdout(), theme.Dir, name+"/")
			case isExecutable(filepath.Join(path, name)):
				th.Println(s.Stdout(), theme.Success, name+"*")
			default:
				th.Println(s.Stdout(), theme.Muted, name)
			}
		}
		return session.CodeSuccess
	})
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode()&0111 != 0
}

func init() {
	register(BuiltinFunc(Ls), "ls", "dir")
}
