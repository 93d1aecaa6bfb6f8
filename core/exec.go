package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"daffa.dev/daffash/core/session"
)

// The orchestrator walks each pipeline through
// Idle → Spawning(i) → Connected(i) → AllSpawned → Waiting → Done.
// Spawning stage i wires its stdin to stage i-1's pipe; Connected is
// reached once the parent has dropped its own copies of that pipe's
// ends. Skipping that release leaves the upstream process blocked on
// a reader that never comes, so it is treated as a postcondition of
// every spawn, not an optimization.

// RunStage executes a single external command with the given streams
// and returns its exit status. Lookup failures report to stderr and
// return the reserved not-found or general-failure codes.
func RunStage(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return reportSpawnError(stderr, argv[0], err)
	}

	cmd := exec.Command(path)
	cmd.Args = argv
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return reportSpawnError(stderr, argv[0], err)
	}
	return exitStatus(cmd.Wait())
}

// RunPipeline executes the stages as concurrent OS processes with
// stage i's stdout feeding stage i+1's stdin. Every stage is waited
// on, but only the final stage's exit status is surfaced.
//
// A spawn failure aborts the stages not yet started; stages already
// running are left to finish and are reaped in the background, never
// killed.
func RunPipeline(stages [][]string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(stages) == 0 {
		return session.CodeSuccess
	}
	if len(stages) == 1 {
		return RunStage(stages[0], stdin, stdout, stderr)
	}

	var started []*exec.Cmd
	var prevRead *os.File

	abort := func(name string, err error) int {
		if prevRead != nil {
			prevRead.Close()
		}
		reap(started)
		return reportSpawnError(stderr, name, err)
	}

	for i, argv := range stages {
		path, err := exec.LookPath(argv[0])
		if err != nil {
			return abort(argv[0], err)
		}

		cmd := exec.Command(path)
		cmd.Args = argv
		cmd.Stderr = stderr

		if i == 0 {
			cmd.Stdin = stdin
		} else {
			cmd.Stdin = prevRead
		}

		var writeEnd, nextRead *os.File
		if i < len(stages)-1 {
			r, w, err := os.Pipe()
			if err != nil {
				return abort(argv[0], err)
			}
			cmd.Stdout = w
			writeEnd, nextRead = w, r
		} else {
			cmd.Stdout = stdout
		}

		startErr := cmd.Start()

		// The child owns its pipe ends now; release the parent's
		// copies so upstream stages see EOF when their reader exits.
		if prevRead != nil {
			prevRead.Close()
			prevRead = nil
		}
		if writeEnd != nil {
			writeEnd.Close()
		}

		if startErr != nil {
			if nextRead != nil {
				nextRead.Close()
			}
			return abort(argv[0], startErr)
		}

		started = append(started, cmd)
		prevRead = nextRead
	}

	var lastErr error
	for i, cmd := range started {
		err := cmd.Wait()
		if i == len(started)-1 {
			lastErr = err
		}
	}
	return exitStatus(lastErr)
}

// reap waits on already-started stages without blocking the caller so
// they don't linger as zombies after a partial pipeline failure.
func reap(cmds []*exec.Cmd) {
	for _, cmd := range cmds {
		go func(c *exec.Cmd) { _ = c.Wait() }(cmd)
	}
}

func reportSpawnError(stderr io.Writer, name string, err error) int {
	if errors.Is(err, exec.ErrNotFound) {
		fmt.Fprintf(stderr, "daffash: %s: command not found\n", name)
		return session.CodeNotFound
	}
	fmt.Fprintf(stderr, "daffash: %s: %v\n", name, err)
	return session.CodeFailure
}

// exitStatus maps a Wait result onto a shell exit code. A process
// killed by a signal reports 128+signal, matching conventional shell
// behavior, which is how an interrupted pipeline ends up at 130.
func exitStatus(err error) int {
	if err == nil {
		return session.CodeSuccess
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return exitErr.ExitCode()
	}
	return session.CodeFailure
}
