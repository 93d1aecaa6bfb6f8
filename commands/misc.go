package commands

import (
	"fmt"
	"os"
	"time"

	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

// Date prints the current time, in UTC with -u.
func Date(s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "date [-u]",
		Short: "Display the current date and time.",
	}
	utc := cmd.Flags().Bool('u', "print Coordinated Universal Time")

	return cmd.Run(s, args, func(rest []string) int {
		now := time.Now()
		if *utc {
			s.Theme().Println(s.Stdout(), theme.Info, now.UTC().Format("2006-01-02 15:04:05 UTC"))
		} else {
			s.Theme().Println(s.Stdout(), theme.Info, now.Format("2006-01-02 15:04:05 Monday"))
		}
		return session.CodeSuccess
	})
}

// Whoami prints the current user name.
func Whoami(s *session.Session, args []string) int {
	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}
	if user == "" {
		user = "unknown"
	}
	s.Theme().Println(s.Stdout(), theme.Info, user)
	return session.CodeSuccess
}

// Hostname prints the machine's hostname.
func Hostname(s *session.Session, args []string) int {
	host, err := os.Hostname()
	if err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return session.CodeFailure
	}
	s.Theme().Println(s.Stdout(), theme.Info, host)
	return session.CodeSuccess
}

// Clear wipes the terminal using ANSI escapes.
func Clear(s *session.Session, args []string) int {
	fmt.Fprint(s.Stdout(), "\x1b[2J\x1b[H")
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Date), "date")
	register(BuiltinFunc(Whoami), "whoami")
	register(BuiltinFunc(Hostname), "hostname")
	register(BuiltinFunc(Clear), "clear", "cls")
}
