// Package config loads and saves the filedock settings file.
//
// The settings file is TOML with a [panel] section holding the tunables and
// a [folders] table mapping folder paths to either an empty string (recurse
// the whole tree) or a newline separated list of glob patterns. The file is
// read once at startup; edits made through the GUI are written back with
// Save and take effect on the next start.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is looked up in the working directory before falling back
// to the hidden file in the user's home directory.
const DefaultFileName = "filedock.toml"

// Panel holds the [panel] section of the settings file.
type Panel struct {
	WindowHeight       int    `toml:"window_height"`
	ScreenPositionLeft int    `toml:"screen_position_left"`
	ScreenPositionTop  int    `toml:"screen_position_top"`
	ButtonWidth        int    `toml:"button_width"`
	ShortButtonHeight  int    `toml:"short_button_height"`
	TallButtonHeight   int    `toml:"tall_button_height"`
	Spacing            int    `toml:"spacing"`
	TextWrapWidth      int    `toml:"text_wrap_width"`
	Program            string `toml:"program"`

	FolderBackgroundColor string `toml:"folder_background_color"`
	FolderTextColor       string `toml:"folder_text_color"`
	FileBackgroundColor   string `toml:"file_background_color"`
	FileTextColor         string `toml:"file_text_color"`
	FontFamily            string `toml:"font_family"`
	FontSize              int    `toml:"font_size"`
}

// Folder is one configured scan root. A nil Globs slice means recurse the
// whole tree; otherwise only the glob matches are shown.
type Folder struct {
	Path  string
	Globs []string
}

// Config is the immutable settings value passed to each component.
type Config struct {
	Panel   Panel
	Folders []Folder

	// Path is the settings file the config was loaded from, or would be
	// saved to when the file did not exist yet.
	Path string
}

type fileConfig struct {
	Panel   Panel             `toml:"panel"`
	Folders map[string]string `toml:"folders"`
}

func defaults() Config {
	return Config{
		Panel: Panel{
			WindowHeight:       600,
			ScreenPositionLeft: 100,
			ScreenPositionTop:  100,
			ButtonWidth:        160,
			ShortButtonHeight:  18,
			TallButtonHeight:   33,
			Spacing:            3,
			TextWrapWidth:      22,
			Program:            "code",

			FolderBackgroundColor: "#0c0c0cff",
			FolderTextColor:       "#00a57fff",
			FileBackgroundColor:   "#595959ff",
			FileTextColor:         "#00b200ff",
			FontFamily:            "monospace",
			FontSize:              14,
		},
		Folders: []Folder{{Path: ".", Globs: []string{"README.md"}}},
	}
}

// ResolvePath returns the settings file to use. An explicit override wins;
// otherwise a co-located filedock.toml is preferred over ~/.filedock.toml.
func ResolvePath(override string) string {
	if override != "" {
		return override
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, "."+DefaultFileName)
}

// Load reads the settings file at path. A missing file is not an error: the
// built-in defaults are returned and the first Save will create the file.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaults()
		cfg.Path = path
		return cfg, nil
	}

	var raw fileConfig
	raw.Panel = defaults().Panel
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	cfg := Config{Panel: raw.Panel, Path: path}
	cfg.Folders = orderedFolders(md, raw.Folders)
	return cfg, nil
}

// orderedFolders rebuilds the [folders] table in file order. A TOML decode
// into a map loses the order the user wrote, so the keys are taken from the
// decode metadata instead.
func orderedFolders(md toml.MetaData, folders map[string]string) []Folder {
	var out []Folder
	seen := make(map[string]bool, len(folders))
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "folders" {
			continue
		}
		path := key[1]
		if seen[path] {
			continue
		}
		seen[path] = true
		value, ok := folders[path]
		if !ok {
			continue
		}
		out = append(out, Folder{Path: path, Globs: splitGlobs(value)})
	}
	return out
}

// splitGlobs turns the newline separated glob list into a slice. An empty
// value means recurse-all mode, reported as a nil slice.
func splitGlobs(value string) []string {
	var globs []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		globs = append(globs, line)
	}
	return globs
}

// HasFolder reports whether path is already a configured scan root.
func (c Config) HasFolder(path string) bool {
	for _, f := range c.Folders {
		if f.Path == path {
			return true
		}
	}
	return false
}

// WithFolder returns a copy of the config with path appended in
// recurse-all mode.
func (c Config) WithFolder(path string) Config {
	out := c
	out.Folders = make([]Folder, 0, len(c.Folders)+1)
	out.Folders = append(out.Folders, c.Folders...)
	out.Folders = append(out.Folders, Folder{Path: path})
	return out
}

// Save writes the config back to its settings file.
func Save(cfg Config) error {
	raw := fileConfig{
		Panel:   cfg.Panel,
		Folders: make(map[string]string, len(cfg.Folders)),
	}
	for _, f := range cfg.Folders {
		raw.Folders[f.Path] = strings.Join(f.Globs, "\n")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}

	file, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("write settings %s: %w", cfg.Path, err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(raw); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return nil
}
