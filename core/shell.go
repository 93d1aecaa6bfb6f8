// Package core implements the command interpretation and execution
// engine: tokenization, alias and history expansion, pipeline
// construction, process orchestration and the interactive read-eval
// loop that ties them together.
package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/abiosoft/readline"
	isatty "github.com/mattn/go-isatty"

	"daffa.dev/daffash/commands"
	"daffa.dev/daffash/core/config"
	"daffa.dev/daffash/core/session"
	"daffa.dev/daffash/core/theme"
)

// Signal tells the read loop whether to keep going after a line.
type Signal int

const (
	Continue Signal = iota
	Terminate
)

type Shell struct {
	Session  *session.Session
	Readline *readline.Instance

	config *config.Configuration
}

func NewShell(cfg *config.Configuration) (*Shell, error) {
	colored := cfg.ColoredOutput && isatty.IsTerminal(os.Stdout.Fd())

	sess := session.New(session.Options{
		Aliases:    cfg.Aliases,
		Theme:      cfg.Theme,
		Colored:    colored,
		MaxHistory: cfg.MaxHistory,
		Persister:  cfg,
	})

	for k, v := range cfg.Env {
		if err := os.Setenv(k, v); err != nil {
			log.Printf("could not set %s from config: %v", k, err)
		}
	}

	_ = os.MkdirAll(filepath.Dir(cfg.HistoryPath()), 0700)
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     cfg.HistoryPath(),
		HistoryLimit:    cfg.MaxHistory,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		Session:  sess,
		Readline: rl,
		config:   cfg,
	}, nil
}

// Run drives the interactive read-eval loop until the input closes or
// a termination keyword is entered. Commands run strictly one at a
// time; the loop never reads the next line while a pipeline is in
// flight.
func (s *Shell) Run() error {
	// Keep the shell itself alive when ^C is aimed at a foreground
	// pipeline; the children receive the signal directly through the
	// terminal's process group and are never killed by the shell.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	sess := s.Session
	sess.Theme().Splash(sess.Stdout())

	for {
		s.Readline.SetPrompt(s.prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			// Input closed, quit gracefully.
			sess.Theme().Typewriter(sess.Stdout(), theme.TypewriterBucket(), theme.Info, "Goodbye!")
			return nil

		case err == readline.ErrInterrupt:
			sess.Theme().Println(sess.Stderr(), theme.Warn, "^C (use 'exit' to quit)")
			sess.SetExitCode(session.CodeInterrupted)
			continue

		case err != nil:
			log.Printf("readline: %v", err)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if s.Handle(line) == Terminate {
			sess.Theme().Typewriter(sess.Stdout(), theme.TypewriterBucket(), theme.Muted, "Shutting down DaffaShell...")
			return nil
		}

		select {
		case <-interrupts:
			sess.Theme().Println(sess.Stderr(), theme.Warn, "^C")
			sess.SetExitCode(session.CodeInterrupted)
		default:
		}
	}
}

// Handle interprets one raw line: history expansion, tokenization,
// alias resolution, the termination check and finally builtin or
// external dispatch. Every path out of here leaves the session's exit
// code up to date.
func (s *Shell) Handle(line string) Signal {
	sess := s.Session

	expanded, isHist := ExpandHistory(line, sess.History)
	sess.History.Add(line)
	if isHist {
		if expanded == "" {
			// Out-of-range reference: nothing to execute.
			return Continue
		}
		sess.Theme().Println(sess.Stdout(), theme.Muted, "Executing: "+expanded)
		line = expanded
	}

	if strings.HasPrefix(line, "#") {
		return Continue
	}

	tokens, err := Tokenize(line)
	if err != nil {
		sess.Theme().Println(sess.Stderr(), theme.Error, "Parse error: "+err.Error())
		sess.SetExitCode(session.CodeParseError)
		return Continue
	}
	if len(tokens) == 0 {
		return Continue
	}

	for i := range tokens {
		tokens[i] = os.ExpandEnv(tokens[i])
	}

	tokens, err = ResolveAlias(tokens, sess.Aliases())
	if err != nil {
		sess.Theme().Println(sess.Stderr(), theme.Error, "Parse error: "+err.Error())
		sess.SetExitCode(session.CodeParseError)
		return Continue
	}
	if len(tokens) == 0 {
		return Continue
	}

	if ExitRequested(tokens) {
		return Terminate
	}

	pipeline := SplitPipeline(tokens)
	if len(pipeline) == 0 {
		return Continue
	}

	if pipeline.Simple() {
		argv := pipeline[0]
		if builtin, ok := commands.Lookup(argv[0]); ok {
			sess.SetExitCode(runBuiltin(sess, builtin, argv))
			return Continue
		}
		sess.SetExitCode(RunStage(argv, sess.Stdin(), sess.Stdout(), sess.Stderr()))
		return Continue
	}

	// Builtin dispatch is bypassed for multi-stage pipelines: every
	// stage is an external process, even when its name matches a
	// builtin.
	sess.SetExitCode(RunPipeline(pipeline, sess.Stdin(), sess.Stdout(), sess.Stderr()))
	return Continue
}

// runBuiltin confines handler faults to the dispatch boundary so a
// broken builtin can't take down the session.
func runBuiltin(sess *session.Session, builtin commands.Builtin, argv []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(sess.Stderr(), "daffash: %s: internal error: %v\n", argv[0], r)
			code = session.CodeFailure
		}
	}()

	return builtin.Main(sess, argv)
}

func (s *Shell) prompt() string {
	th := s.Session.Theme()

	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}
	if user == "" {
		user = "user"
	}
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	wd, _ := os.Getwd()
	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(wd, home) {
		wd = "~" + strings.TrimPrefix(wd, home)
	}

	exitNote := ""
	if code := s.Session.ExitCode(); code != 0 {
		exitNote = " " + th.Sprintf(theme.Error, "[%d]", code)
	}

	return fmt.Sprintf("%s%s%s%s%s%s%s\n%s%s ",
		th.Sprintf(theme.Accent, "┌─["),
		th.Sprintf(theme.Success, "%s", user),
		th.Sprintf(theme.Muted, "@%s", host),
		th.Sprintf(theme.Accent, "]─["),
		th.Sprintf(theme.Dir, "%s", wd),
		th.Sprintf(theme.Accent, "]"),
		exitNote,
		th.Sprintf(theme.Accent, "└─"),
		th.Sprintf(theme.Prompt, "%s", s.config.PromptSymbol))
}

// Close releases the line editor and persists session state.
func (s *Shell) Close() error {
	if err := s.config.Save(); err != nil {
		log.Printf("could not save configuration: %v", err)
	}
	return s.Readline.Close()
}
