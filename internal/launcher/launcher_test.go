package launcher

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestOpenProgramNotOnPath(t *testing.T) {
	l := New("filedock-no-such-program", zerolog.Nop())

	// Must not panic or retry; the failure is recorded, not returned.
	l.Open("somefile.txt")

	record, ok := l.LastLaunch()
	if !ok {
		t.Fatal("LastLaunch: no record after Open")
	}
	if record.Resolved != "" {
		t.Errorf("Resolved = %q, want empty for unresolved program", record.Resolved)
	}
	if record.Err == "" {
		t.Error("Err should describe the failed lookup")
	}
	if record.Target != "somefile.txt" {
		t.Errorf("Target = %q", record.Target)
	}
}

func TestOpenRunsProgramWithSingleArgument(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test script requires a unix shell")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "fakeedit")
	content := "#!/bin/sh\necho editing \"$1\"\nexit 0\n"
	if err := os.WriteFile(script, []byte(content), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	t.Setenv("PATH", dir)

	l := New("fakeedit", zerolog.Nop())
	l.Open("notes.md")

	record, ok := l.LastLaunch()
	if !ok {
		t.Fatal("LastLaunch: no record after Open")
	}
	if record.Resolved != script {
		t.Errorf("Resolved = %q, want %q", record.Resolved, script)
	}
	if record.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", record.ExitCode)
	}
	if got := l.TailOutput(10); !strings.Contains(got, "editing notes.md") {
		t.Errorf("captured output = %q, want the script's echo", got)
	}
}

func TestOpenReportsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test script requires a unix shell")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "failingedit")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	t.Setenv("PATH", dir)

	l := New("failingedit", zerolog.Nop())
	l.Open("notes.md")

	record, _ := l.LastLaunch()
	if record.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", record.ExitCode)
	}
	if record.Err == "" {
		t.Error("Err should report the non-zero exit")
	}
}

func TestDetectEditors(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"vim", "code", "unrelated-tool"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	t.Setenv("PATH", dir)

	editors := DetectEditors()
	if len(editors) != 2 || editors[0] != "code" || editors[1] != "vim" {
		t.Errorf("DetectEditors = %v, want [code vim]", editors)
	}
}

func TestDetectEditorsExtensions(t *testing.T) {
	dir := t.TempDir()
	// Only Windows executable extensions are stripped: "code.exe" counts
	// as code, "vim.backup" is not vim.
	for _, name := range []string{"code.exe", "vim.backup"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("binary"), 0o755); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	t.Setenv("PATH", dir)

	editors := DetectEditors()
	if len(editors) != 1 || editors[0] != "code" {
		t.Errorf("DetectEditors = %v, want [code]", editors)
	}
}
