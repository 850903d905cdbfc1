package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "filedock.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filedock.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.Panel.Program != "code" {
		t.Errorf("Program = %q, want %q", cfg.Panel.Program, "code")
	}
	if cfg.Panel.TextWrapWidth != 22 {
		t.Errorf("TextWrapWidth = %d, want 22", cfg.Panel.TextWrapWidth)
	}
	if len(cfg.Folders) != 1 || cfg.Folders[0].Path != "." {
		t.Fatalf("Folders = %+v, want the default '.' entry", cfg.Folders)
	}
	if len(cfg.Folders[0].Globs) != 1 || cfg.Folders[0].Globs[0] != "README.md" {
		t.Errorf("default globs = %v, want [README.md]", cfg.Folders[0].Globs)
	}
}

func TestLoadKeepsFolderOrder(t *testing.T) {
	path := writeSettings(t, `
[panel]
window_height = 1000
program = "subl"

[folders]
"zz/last" = ""
"." = """
*.md
*.txt
"""
docs = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Panel.WindowHeight != 1000 {
		t.Errorf("WindowHeight = %d, want 1000", cfg.Panel.WindowHeight)
	}
	if cfg.Panel.Program != "subl" {
		t.Errorf("Program = %q, want %q", cfg.Panel.Program, "subl")
	}
	// Keys missing from the file keep their defaults.
	if cfg.Panel.ShortButtonHeight != 18 {
		t.Errorf("ShortButtonHeight = %d, want default 18", cfg.Panel.ShortButtonHeight)
	}

	want := []string{"zz/last", ".", "docs"}
	if len(cfg.Folders) != len(want) {
		t.Fatalf("got %d folders, want %d", len(cfg.Folders), len(want))
	}
	for i, folder := range want {
		if cfg.Folders[i].Path != folder {
			t.Errorf("Folders[%d].Path = %q, want %q", i, cfg.Folders[i].Path, folder)
		}
	}

	if cfg.Folders[0].Globs != nil {
		t.Errorf("zz/last globs = %v, want recurse-all (nil)", cfg.Folders[0].Globs)
	}
	globs := cfg.Folders[1].Globs
	if len(globs) != 2 || globs[0] != "*.md" || globs[1] != "*.txt" {
		t.Errorf("'.' globs = %v, want [*.md *.txt]", globs)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filedock.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Panel.Program = "nvim"
	cfg.Panel.WindowHeight = 720
	cfg.Folders = []Folder{
		{Path: "a", Globs: []string{"*.go", "*.mod"}},
		{Path: "b"},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.Panel.Program != "nvim" {
		t.Errorf("Program = %q, want %q", loaded.Panel.Program, "nvim")
	}
	if loaded.Panel.WindowHeight != 720 {
		t.Errorf("WindowHeight = %d, want 720", loaded.Panel.WindowHeight)
	}
	if len(loaded.Folders) != 2 {
		t.Fatalf("got %d folders, want 2", len(loaded.Folders))
	}
	if loaded.Folders[0].Path != "a" {
		t.Errorf("Folders[0].Path = %q, want %q", loaded.Folders[0].Path, "a")
	}
	globs := loaded.Folders[0].Globs
	if len(globs) != 2 || globs[0] != "*.go" || globs[1] != "*.mod" {
		t.Errorf("folder a globs = %v, want [*.go *.mod]", globs)
	}
	if loaded.Folders[1].Globs != nil {
		t.Errorf("folder b globs = %v, want recurse-all (nil)", loaded.Folders[1].Globs)
	}
}

func TestWithFolder(t *testing.T) {
	cfg := Config{Folders: []Folder{{Path: "."}}}

	if cfg.HasFolder("docs") {
		t.Error("HasFolder(docs) = true before adding")
	}
	added := cfg.WithFolder("docs")
	if !added.HasFolder("docs") {
		t.Error("HasFolder(docs) = false after adding")
	}
	if len(cfg.Folders) != 1 {
		t.Errorf("original config mutated: %+v", cfg.Folders)
	}
	if added.Folders[len(added.Folders)-1].Globs != nil {
		t.Error("added folder should be recurse-all mode")
	}
}

func TestResolvePathOverride(t *testing.T) {
	if got := ResolvePath("/tmp/custom.toml"); got != "/tmp/custom.toml" {
		t.Errorf("ResolvePath override = %q", got)
	}
}
