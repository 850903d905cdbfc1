package launcher

import (
	"os"
	"path/filepath"
	"strings"
)

// knownEditors are program names offered by the settings program picker
// when found on PATH. The configured program is not limited to this list.
var knownEditors = []string{
	"code", "codium", "subl", "zed", "gedit", "kate",
	"nvim", "vim", "emacs", "notepad++", "idea",
}

// DetectEditors scans the PATH directories for well-known editor binaries
// and returns the unique program names found, in knownEditors order.
func DetectEditors() []string {
	pathEnv := os.Getenv("PATH")
	dirs := strings.Split(pathEnv, string(os.PathListSeparator))

	available := make(map[string]bool)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			// Strip Windows executable extensions only, so "code.exe"
			// matches "code" but "vim.backup" does not match "vim".
			switch ext := strings.ToLower(filepath.Ext(name)); ext {
			case ".exe", ".bat", ".cmd", ".com":
				name = name[:len(name)-len(ext)]
			}
			available[strings.ToLower(name)] = true
		}
	}

	var editors []string
	for _, name := range knownEditors {
		if available[name] {
			editors = append(editors, name)
		}
	}
	return editors
}
