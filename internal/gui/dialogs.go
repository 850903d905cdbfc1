package gui

import (
	"fmt"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/devmarvs/filedock/internal/config"
	"github.com/devmarvs/filedock/internal/launcher"
)

// showAddFolder lets the user pick a folder, appends it to the settings
// file in recurse-all mode, and reminds them to restart.
func (p *Panel) showAddFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		path := uri.Path()

		info, err := os.Stat(path)
		if err != nil {
			dialog.ShowError(fmt.Errorf("not adding %s: %w", path, err), p.window)
			return
		}
		if !info.IsDir() {
			dialog.ShowError(fmt.Errorf("not adding %s: not a directory", path), p.window)
			return
		}
		if p.cfg.HasFolder(path) {
			dialog.ShowInformation("Add Folder",
				fmt.Sprintf("%s is already configured.", path), p.window)
			return
		}

		p.cfg = p.cfg.WithFolder(path)
		if err := config.Save(p.cfg); err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		p.log.Info().Str("folder", path).Msg("folder added to settings")
		dialog.ShowInformation("Add Folder",
			fmt.Sprintf("Added %s.\nRestart filedock to rescan.", path), p.window)
	}, p.window)
}

// showScreenPosition edits the saved screen position of the window.
func (p *Panel) showScreenPosition() {
	left := widget.NewEntry()
	left.SetText(strconv.Itoa(p.cfg.Panel.ScreenPositionLeft))
	top := widget.NewEntry()
	top.SetText(strconv.Itoa(p.cfg.Panel.ScreenPositionTop))

	items := []*widget.FormItem{
		widget.NewFormItem("Left", left),
		widget.NewFormItem("Top", top),
	}
	dialog.ShowForm("Screen Position", "Save", "Cancel", items, func(save bool) {
		if !save {
			return
		}
		p.cfg.Panel.ScreenPositionLeft = p.intOrKeep(left.Text, p.cfg.Panel.ScreenPositionLeft)
		p.cfg.Panel.ScreenPositionTop = p.intOrKeep(top.Text, p.cfg.Panel.ScreenPositionTop)
		p.saveSettings()
	}, p.window)
}

// showSettings edits the panel tunables and the launch program.
func (p *Panel) showSettings() {
	program := widget.NewSelectEntry(launcher.DetectEditors())
	program.SetText(p.cfg.Panel.Program)

	windowHeight := p.intEntry(p.cfg.Panel.WindowHeight)
	buttonWidth := p.intEntry(p.cfg.Panel.ButtonWidth)
	shortButton := p.intEntry(p.cfg.Panel.ShortButtonHeight)
	tallButton := p.intEntry(p.cfg.Panel.TallButtonHeight)
	spacing := p.intEntry(p.cfg.Panel.Spacing)
	wrapWidth := p.intEntry(p.cfg.Panel.TextWrapWidth)

	folderBG := widget.NewEntry()
	folderBG.SetText(p.cfg.Panel.FolderBackgroundColor)
	folderFG := widget.NewEntry()
	folderFG.SetText(p.cfg.Panel.FolderTextColor)
	fileBG := widget.NewEntry()
	fileBG.SetText(p.cfg.Panel.FileBackgroundColor)
	fileFG := widget.NewEntry()
	fileFG.SetText(p.cfg.Panel.FileTextColor)

	fontFamily := widget.NewEntry()
	fontFamily.SetText(p.cfg.Panel.FontFamily)
	fontSize := p.intEntry(p.cfg.Panel.FontSize)

	items := []*widget.FormItem{
		widget.NewFormItem("Program", program),
		widget.NewFormItem("Window height (px)", windowHeight),
		widget.NewFormItem("Button width (px)", buttonWidth),
		widget.NewFormItem("Short button height (px)", shortButton),
		widget.NewFormItem("Tall button height (px)", tallButton),
		widget.NewFormItem("Spacing (px)", spacing),
		widget.NewFormItem("Text wrap width (chars)", wrapWidth),
		widget.NewFormItem("Folder background color", folderBG),
		widget.NewFormItem("Folder text color", folderFG),
		widget.NewFormItem("File background color", fileBG),
		widget.NewFormItem("File text color", fileFG),
		widget.NewFormItem("Font family", fontFamily),
		widget.NewFormItem("Font size (px)", fontSize),
	}
	dialog.ShowForm("Settings", "Save", "Cancel", items, func(save bool) {
		if !save {
			return
		}
		p.cfg.Panel.Program = program.Text
		p.cfg.Panel.WindowHeight = p.intOrKeep(windowHeight.Text, p.cfg.Panel.WindowHeight)
		p.cfg.Panel.ButtonWidth = p.intOrKeep(buttonWidth.Text, p.cfg.Panel.ButtonWidth)
		p.cfg.Panel.ShortButtonHeight = p.intOrKeep(shortButton.Text, p.cfg.Panel.ShortButtonHeight)
		p.cfg.Panel.TallButtonHeight = p.intOrKeep(tallButton.Text, p.cfg.Panel.TallButtonHeight)
		p.cfg.Panel.Spacing = p.intOrKeep(spacing.Text, p.cfg.Panel.Spacing)
		p.cfg.Panel.TextWrapWidth = p.intOrKeep(wrapWidth.Text, p.cfg.Panel.TextWrapWidth)
		p.cfg.Panel.FolderBackgroundColor = folderBG.Text
		p.cfg.Panel.FolderTextColor = folderFG.Text
		p.cfg.Panel.FileBackgroundColor = fileBG.Text
		p.cfg.Panel.FileTextColor = fileFG.Text
		p.cfg.Panel.FontFamily = fontFamily.Text
		p.cfg.Panel.FontSize = p.intOrKeep(fontSize.Text, p.cfg.Panel.FontSize)
		p.saveSettings()
	}, p.window)
}

// showLaunchLog shows the last launch outcome and captured child output.
func (p *Panel) showLaunchLog() {
	record, ok := p.launch.LastLaunch()
	if !ok {
		dialog.ShowInformation("Launch Log", "Nothing launched yet.", p.window)
		return
	}

	status := fmt.Sprintf("%s %s\nexit code %d", record.Program, record.Target, record.ExitCode)
	if record.Resolved == "" {
		status = fmt.Sprintf("%s was not found on PATH.", record.Program)
	} else if record.Err != "" {
		status += "\n" + record.Err
	}

	output := p.launch.TailOutput(40)
	if output != "" {
		status += "\n\n" + output
	}

	label := widget.NewLabel(status)
	label.Wrapping = fyne.TextWrapBreak
	dialog.ShowCustom("Launch Log", "Close", label, p.window)
}

func (p *Panel) showAbout() {
	text := fmt.Sprintf("filedock\n\nSettings file: %s\nLaunch program: %s",
		p.cfg.Path, p.cfg.Panel.Program)
	dialog.ShowInformation("About filedock", text, p.window)
}

func (p *Panel) saveSettings() {
	if err := config.Save(p.cfg); err != nil {
		dialog.ShowError(err, p.window)
		return
	}
	dialog.ShowInformation("Settings", "Saved. Restart filedock to apply.", p.window)
}

func (p *Panel) intEntry(value int) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(value))
	return entry
}

// intOrKeep parses a positive integer field, keeping the previous value on
// malformed input.
func (p *Panel) intOrKeep(text string, previous int) int {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		p.log.Warn().Str("value", text).Msg("ignoring malformed setting value")
		return previous
	}
	return n
}
