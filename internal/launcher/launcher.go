// Package launcher resolves the configured editor program and runs it with
// a clicked file as its only argument.
package launcher

import (
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Launch records the outcome of the most recent launch attempt.
type Launch struct {
	Program  string
	Target   string
	Resolved string // empty when the program was not found on PATH
	ExitCode int
	Err      string
	When     time.Time
}

// Launcher runs the configured program synchronously, one launch at a time.
// Child output is captured in a bounded buffer for the GUI to display.
type Launcher struct {
	program string
	log     zerolog.Logger

	mu     sync.Mutex
	last   Launch
	hasRun bool
	output *OutputBuffer
}

// New returns a Launcher for the configured program name.
func New(program string, log zerolog.Logger) *Launcher {
	return &Launcher{
		program: program,
		log:     log,
		output:  NewOutputBuffer(0),
	}
}

// Open resolves the program on the system search path and runs it with
// target as the only argument, without shell interpretation. Resolution
// failure aborts the launch with a diagnostic; it is not an error and is
// never retried. The child's exit status is reported as a diagnostic only.
func (l *Launcher) Open(target string) {
	record := Launch{Program: l.program, Target: target, When: time.Now()}

	path, err := exec.LookPath(l.program)
	if err != nil {
		record.Err = err.Error()
		l.store(record)
		l.log.Warn().Str("program", l.program).Err(err).
			Msg("not launching: program not found on PATH")
		return
	}
	record.Resolved = path

	cmd := exec.Command(path, target)
	cmd.Stdout = io.MultiWriter(os.Stdout, l.output)
	cmd.Stderr = io.MultiWriter(os.Stderr, l.output)

	err = cmd.Run()
	if cmd.ProcessState != nil {
		record.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil {
		record.Err = err.Error()
	}
	l.store(record)

	l.log.Info().Str("program", path).Str("target", target).
		Int("exit_code", record.ExitCode).Msg("launch finished")
}

func (l *Launcher) store(record Launch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = record
	l.hasRun = true
}

// LastLaunch returns the most recent launch record, if any.
func (l *Launcher) LastLaunch() (Launch, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last, l.hasRun
}

// TailOutput returns up to n trailing lines of captured child output.
func (l *Launcher) TailOutput(n int) string {
	return l.output.TailText(n)
}
