// Package scanner walks the configured folders and produces the ordered
// cell sequence the layout engine sizes and packs into columns.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devmarvs/filedock/internal/config"
)

// Cell is one panel entry: a folder label when Target is empty, or a
// launchable file button. Height stays zero until the layout engine sizes
// the cell.
type Cell struct {
	Title  string
	Target string
	Height int
}

// IsLabel reports whether the cell is a non-interactive folder label.
func (c Cell) IsLabel() bool { return c.Target == "" }

// artifactPrefix marks build-artifact directories that are never scanned.
const artifactPrefix = "__"

var disallowed = []string{";", "&&", "||", "\n"}

// FilenameOK reports whether name is safe to hand to the launch program.
// Names containing shell metacharacter sequences are rejected so a
// misconfigured shell program cannot be tricked into running them.
func FilenameOK(name string) bool {
	for _, s := range disallowed {
		if strings.Contains(name, s) {
			return false
		}
	}
	return true
}

// Scanner produces unsized cells from the configured folders.
type Scanner struct {
	log zerolog.Logger
}

// New returns a Scanner reporting diagnostics to log.
func New(log zerolog.Logger) *Scanner {
	return &Scanner{log: log}
}

// Scan visits every configured folder in order. Folders with glob patterns
// use glob mode, the rest are recursed fully. A configured folder missing
// from the filesystem is skipped with a diagnostic.
func (s *Scanner) Scan(folders []config.Folder) []Cell {
	var cells []Cell
	for _, folder := range folders {
		if _, err := os.Stat(folder.Path); err != nil {
			s.log.Warn().Str("folder", folder.Path).Msg("configured folder does not exist, skipping")
			continue
		}
		if len(folder.Globs) > 0 {
			name := folder.Path
			if name == "." {
				name = "root"
			}
			cells = append(cells, s.globFolder(folder.Path, name, folder.Globs)...)
		} else {
			cells = append(cells, s.walkFolder(folder.Path)...)
		}
	}
	return cells
}

// walkFolder recurses folder depth-first with an explicit stack of pending
// directories: files before subdirectories, alphabetical at each level,
// each subdirectory exhausted before the next sibling starts. A folder
// label is emitted only when the folder yields at least one visible file.
func (s *Scanner) walkFolder(folder string) []Cell {
	var cells []Cell
	stack := []string{folder}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// os.ReadDir returns entries sorted by name, which is the
		// per-level ordering the panel shows.
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.log.Warn().Str("folder", dir).Err(err).Msg("cannot read folder, skipping")
			continue
		}

		visited := false
		var subdirs []string
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if !strings.HasPrefix(name, artifactPrefix) {
					subdirs = append(subdirs, filepath.Join(dir, name))
				}
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Size() == 0 {
				continue
			}
			if !visited {
				visited = true
				cells = append(cells, Cell{Title: filepath.ToSlash(dir)})
			}
			if s.filenameOK(name) {
				cells = append(cells, Cell{Title: name, Target: filepath.Join(dir, name)})
			}
		}

		// Reverse push so the first subdirectory is processed first.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
	return cells
}

// globFolder emits the folder label followed by the de-duplicated union of
// all pattern matches, sorted by file name. The label is emitted even when
// no pattern matches anything.
func (s *Scanner) globFolder(folder, label string, patterns []string) []Cell {
	cells := []Cell{{Title: label}}

	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(folder, pattern))
		if err != nil {
			s.log.Warn().Str("pattern", pattern).Err(err).Msg("bad glob pattern, skipping")
			continue
		}
		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() || info.Size() == 0 {
				continue
			}
			if s.filenameOK(filepath.Base(path)) {
				paths = append(paths, path)
			}
		}
	}

	sort.Slice(paths, func(i, j int) bool {
		bi, bj := filepath.Base(paths[i]), filepath.Base(paths[j])
		if bi != bj {
			return bi < bj
		}
		return paths[i] < paths[j]
	})

	for _, path := range paths {
		cells = append(cells, Cell{Title: filepath.Base(path), Target: path})
	}
	return cells
}

func (s *Scanner) filenameOK(name string) bool {
	if FilenameOK(name) {
		return true
	}
	s.log.Warn().Str("filename", name).Msg("no button: filename contains a disallowed substring")
	return false
}
