package commands

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

// Sysinfo prints a themed summary of the host and session.
func Sysinfo(s *session.Session, args []string) int {
	th := s.Theme()
	rule := strings.Repeat("═", 50)

	host, _ := os.Hostname()
	wd, _ := os.Getwd()
	home, _ := os.UserHomeDir()
	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}

	info := []struct{ label, value string }{
		{"OS", runtime.GOOS},
		{"Arch", runtime.GOARCH},
		{"CPUs", fmt.Sprintf("%d", runtime.NumCPU())},
		{"Go", runtime.Version()},
		{"Shell", theme.Version},
		{"Host", host},
		{"CWD", wd},
		{"User", user},
		{"Home", home},
	}

	fmt.Fprintln(s.Stdout())
	th.Println(s.Stdout(), theme.Accent, rule)
	th.Println(s.Stdout(), theme.Info, "System Information")
	th.Println(s.Stdout(), theme.Accent, rule)
	for _, entry := range info {
		fmt.Fprintf(s.Stdout(), "%s: %s\n",
			th.Sprintf(theme.Muted, "%-12s", entry.label),
			th.Sprintf(theme.Success, "%s", entry.value))
	}
	th.Println(s.Stdout(), theme.Accent, rule)
	fmt.Fprintln(s.Stdout())

	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Sysinfo), "sysinfo")
}
