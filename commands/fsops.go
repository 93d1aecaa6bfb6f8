package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"daffa.dev/daffash/core/session"
)

// Mkdir creates the named directories, parents included.
func Mkdir(s *session.Session, args []string) int {
	if len(args) < 2 {
		fmt.Fprintf(s.Stderr(), "%s: missing operand\n", args[0])
		return session.CodeFailure
	}
	for _, dir := range args[1:] {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return session.CodeFailure
		}
	}
	return session.CodeSuccess
}

// Touch creates the named files or updates their timestamps.
func Touch(s *session.Session, args []string) int {
	if len(args) < 2 {
		fmt.Fprintf(s.Stderr(), "%s: missing operand\n", args[0])
		return session.CodeFailure
	}
	for _, name := range args[1:] {
		fd, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return session.CodeFailure
		}
		fd.Close()

		now := time.Now()
		_ = os.Chtimes(name, now, now)
	}
	return session.CodeSuccess
}

// Rm removes files, and directories when -r is given.
func Rm(s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "rm [-rf] FILE...",
		Short: "Remove files or directories.",
	}
	recursive := cmd.Flags().Bool('r', "remove directories and their contents")
	force := cmd.Flags().Bool('f', "ignore errors and missing operands")

	return cmd.Run(s, args, func(rest []string) int {
		if len(rest) == 0 && !*force {
			fmt.Fprintf(s.Stderr(), "%s: missing operand\n", args[0])
			return session.CodeFailure
		}

		for _, name := range rest {
			info, err := os.Stat(name)
			switch {
			case err != nil:
				// fall through to the removal error below
			case info.IsDir() && !*recursive:
				if !*force {
					fmt.Fprintf(s.Stderr(), "%s: %s is a directory (use -r)\n", args[0], name)
					return session.CodeFailure
				}
				continue
			}

			if *recursive {
				err = os.RemoveAll(name)
			} else {
				err = os.Remove(name)
			}
			if err != nil && !*force {
				fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
				return session.CodeFailure
			}
		}
		return session.CodeSuccess
	})
}

// Cp copies a single file.
func Cp(s *session.Session, args []string) int {
	if len(args) < 3 {
		fmt.Fprintf(s.Stderr(), "%s: missing operand\n", args[0])
		return session.CodeFailure
	}

	src, dst := args[1], args[2]
	in, err := os.Open(src)
	if err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return session.CodeFailure
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return session.CodeFailure
	}
	if info.IsDir() {
		fmt.Fprintf(s.Stderr(), "%s: %s is a directory\n", args[0], src)
		return session.CodeFailure
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return session.CodeFailure
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return session.CodeFailure
	}
	return session.CodeSuccess
}

// Mv renames a file or directory.
func Mv(s *session.Session, args []string) int {
	if len(args) < 3 {
		fmt.Fprintf(s.Stderr(), "%s: missing operand\n", args[0])
		return session.CodeFailure
	}
	if err := os.Rename(args[1], args[2]); err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return session.CodeFailure
	}
	return session.CodeSuccess
}

func init() {
	register(BuiltinFunc(Mkdir), "mkdir")
	register(BuiltinFunc(Touch), "touch")
	register(BuiltinFunc(Rm), "rm", "del")
	register(BuiltinFunc(Cp), "cp", "copy")
	register(BuiltinFunc(Mv), "mv", "move")
}
