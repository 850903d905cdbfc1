// Filedock is a desktop panel of buttons, one per file found under the
// configured folders. Clicking a button launches the configured editor or
// IDE with that file as its only argument.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/devmarvs/filedock/internal/config"
	"github.com/devmarvs/filedock/internal/gui"
	"github.com/devmarvs/filedock/internal/launcher"
	"github.com/devmarvs/filedock/internal/layout"
	"github.com/devmarvs/filedock/internal/scanner"
)

func main() {
	title := flag.String("title", "filedock", "text shown in the main window title bar")
	configPath := flag.String("config", "", "settings file (default: ./filedock.toml if present, else ~/.filedock.toml)")
	debug := flag.Bool("debug", false, "enable debug output")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	path := config.ResolvePath(*configPath)
	log.Info().Str("file", path).Msg("reading settings")
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load settings")
	}

	params := layout.Params{
		WindowHeight:  cfg.Panel.WindowHeight,
		ShortButton:   cfg.Panel.ShortButtonHeight,
		TallButton:    cfg.Panel.TallButtonHeight,
		Spacing:       cfg.Panel.Spacing,
		TextWrapWidth: cfg.Panel.TextWrapWidth,
	}

	// The whole pipeline runs once, before the window is shown. Settings
	// changes require a restart.
	cells := scanner.New(log).Scan(cfg.Folders)
	sized := layout.ComputeHeights(cells, params)
	columns, err := layout.MakeColumns(sized, params)
	if err != nil {
		if errors.Is(err, layout.ErrWindowTooShort) {
			log.Fatal().Err(err).Int("window_height", cfg.Panel.WindowHeight).
				Msg("window_height must fit at least the control buttons")
		}
		log.Fatal().Err(err).Msg("cannot lay out panel")
	}
	log.Info().Int("cells", len(cells)).Int("columns", len(columns)).Msg("scan complete")

	launch := launcher.New(cfg.Panel.Program, log)
	gui.New(cfg, columns, launch, log).Run(*title)
}
