// Package gui renders the packed columns as a Fyne window of buttons.
//
// The pipeline output is rendered once at startup; settings edited through
// the dialogs are written back to the settings file and take effect on the
// next start.
package gui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/devmarvs/filedock/internal/config"
	"github.com/devmarvs/filedock/internal/launcher"
	"github.com/devmarvs/filedock/internal/scanner"
)

// Panel owns the window built from the packed cell columns.
type Panel struct {
	cfg     config.Config
	columns [][]scanner.Cell
	launch  *launcher.Launcher
	log     zerolog.Logger

	app    fyne.App
	window fyne.Window
}

// New prepares a panel window. Run must be called from the main goroutine.
func New(cfg config.Config, columns [][]scanner.Cell, l *launcher.Launcher, log zerolog.Logger) *Panel {
	return &Panel{cfg: cfg, columns: columns, launch: l, log: log}
}

// Run builds the window and blocks until the panel is closed.
func (p *Panel) Run(title string) {
	p.app = app.New()
	p.window = p.app.NewWindow(title)

	columns := p.columns
	if len(columns) == 0 {
		// Nothing scanned: still show one column for the control buttons.
		columns = [][]scanner.Cell{nil}
	}

	row := container.NewHBox()
	buttons := 0
	for i, column := range columns {
		stack := container.NewVBox()
		if i == 0 {
			for _, ctl := range p.controlButtons() {
				stack.Add(p.fixedSize(ctl, p.cfg.Panel.ShortButtonHeight))
			}
		}
		for _, cell := range column {
			stack.Add(p.cellObject(cell))
			if !cell.IsLabel() {
				buttons++
			}
		}
		row.Add(stack)
	}
	p.log.Info().Int("columns", len(columns)).Int("file_buttons", buttons).Msg("panel built")

	p.window.SetContent(container.NewPadded(row))
	p.window.SetMainMenu(p.mainMenu())

	width := len(columns)*p.cfg.Panel.ButtonWidth + p.cfg.Panel.Spacing
	p.window.Resize(fyne.NewSize(float32(width), float32(p.cfg.Panel.WindowHeight)))
	p.window.SetFixedSize(true)
	p.window.ShowAndRun()
}

// cellObject renders one cell: a colored label for folders, a styled
// launch button for files. Both kinds use their configured colors.
func (p *Panel) cellObject(cell scanner.Cell) fyne.CanvasObject {
	if cell.IsLabel() {
		fg := parseHexColor(p.cfg.Panel.FolderTextColor, color.White)
		bg := parseHexColor(p.cfg.Panel.FolderBackgroundColor, color.Black)
		face := container.NewStack(canvas.NewRectangle(bg), p.textLines(cell.Title, fg))
		return p.fixedSize(face, cell.Height)
	}
	return p.fixedSize(p.fileButton(cell), cell.Height)
}

// fileButton draws a file cell with the file colors and launches its
// target when tapped.
func (p *Panel) fileButton(cell scanner.Cell) fyne.CanvasObject {
	fg := parseHexColor(p.cfg.Panel.FileTextColor, color.White)
	bg := parseHexColor(p.cfg.Panel.FileBackgroundColor, color.Black)
	face := container.NewStack(canvas.NewRectangle(bg), p.textLines(cell.Title, fg))

	target := cell.Target
	return newTappable(face, func() {
		p.log.Debug().Str("target", target).Msg("file button pressed")
		p.launch.Open(target)
	})
}

// textLines draws the wrapped title one canvas line at a time in the
// configured font size and family.
func (p *Panel) textLines(title string, fg color.Color) fyne.CanvasObject {
	style := fyne.TextStyle{Monospace: monospaceFamily(p.cfg.Panel.FontFamily)}
	lines := container.NewVBox()
	for _, line := range strings.Split(title, "\n") {
		text := canvas.NewText(line, fg)
		text.Alignment = fyne.TextAlignCenter
		text.TextSize = float32(p.cfg.Panel.FontSize)
		text.TextStyle = style
		lines.Add(text)
	}
	return lines
}

// monospaceFamily maps the configured font family onto Fyne's text style.
// Fyne cannot load arbitrary font files per widget; monospace is the
// distinction it supports.
func monospaceFamily(family string) bool {
	family = strings.ToLower(family)
	return strings.Contains(family, "mono") || strings.Contains(family, "courier")
}

// tappable wraps a rendered cell face and runs a callback when tapped.
type tappable struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	onTapped func()
}

func newTappable(content fyne.CanvasObject, onTapped func()) *tappable {
	t := &tappable{content: content, onTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tappable) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

func (t *tappable) Tapped(*fyne.PointEvent) { t.onTapped() }

// fixedSize pins an object to the panel's button width and the cell's
// computed pixel height.
func (p *Panel) fixedSize(obj fyne.CanvasObject, height int) fyne.CanvasObject {
	size := fyne.NewSize(float32(p.cfg.Panel.ButtonWidth), float32(height))
	return container.NewGridWrap(size, obj)
}

func (p *Panel) controlButtons() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		widget.NewButton("Add Folder", p.showAddFolder),
		widget.NewButton("Screen Position", p.showScreenPosition),
		widget.NewButton("Settings", p.showSettings),
		widget.NewButton("Quit", func() { p.app.Quit() }),
	}
}

func (p *Panel) mainMenu() *fyne.MainMenu {
	aboutItem := fyne.NewMenuItem("About", p.showAbout)
	logItem := fyne.NewMenuItem("Launch Log", p.showLaunchLog)
	return fyne.NewMainMenu(fyne.NewMenu("Filedock", logItem, aboutItem))
}

// parseHexColor reads #rrggbb or #rrggbbaa; fallback is returned on any
// malformed value.
func parseHexColor(s string, fallback color.Color) color.Color {
	s = strings.TrimPrefix(s, "#")
	var r, g, b, a uint8
	a = 0xff
	switch len(s) {
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return fallback
		}
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return fallback
		}
	default:
		return fallback
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
