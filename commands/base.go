// Package commands implements the shell builtins: commands executed
// in-process instead of being spawned as external programs.
package commands

import (
	"fmt"
	"io"
	"sort"

	getopt "github.com/pborman/getopt/v2"

	"daffa.dev/daffash/core/session"
)

// Builtin is the capability the dispatch table hands out. A builtin
// receives the full argv (args[0] is the command name) and reports
// its exit status; any other effect happens through the session.
type Builtin interface {
	Main(s *session.Session, args []string) int
}

// BuiltinFunc adapts a plain function to the Builtin interface.
type BuiltinFunc func(s *session.Session, args []string) int

func (f BuiltinFunc) Main(s *session.Session, args []string) int {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// AllBuiltins maps command names to handlers. It is populated by
// init() functions at startup and treated as immutable afterwards.
var AllBuiltins = make(map[string]Builtin)

func register(b Builtin, names ...string) {
	for _, name := range names {
		if _, exists := AllBuiltins[name]; exists {
			panic(fmt.Sprintf("duplicate builtin: %q", name))
		}
		AllBuiltins[name] = b
	}
}

// Lookup finds a builtin by exact command name.
func Lookup(name string) (Builtin, bool) {
	b, ok := AllBuiltins[name]
	return b, ok
}

// Names lists the registered builtins in sorted order.
func Names() []string {
	var out []string
	for k := range AllBuiltins {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SimpleCommand standardizes flag parsing and help output for
// builtins that take options.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (c *SimpleCommand) Flags() *getopt.Set {
	if c.flags == nil {
		c.flags = getopt.New()
	}
	return c.flags
}

// PrintHelp writes help for the command to the given writer.
func (c *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, c.Use)
	fmt.Fprintln(w, c.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	c.Flags().PrintOptions(w)
}

// Run parses flags from args and, on success, calls the callback.
func (c *SimpleCommand) Run(s *session.Session, args []string, callback func(args []string) int) int {
	opts := c.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		c.PrintHelp(s.Stderr())
		return session.CodeFailure
	}

	if *showHelp {
		c.PrintHelp(s.Stdout())
		return session.CodeSuccess
	}

	return callback(opts.Args())
}
