package main

import (
	"context"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/wcgen/internal/generator"
	"github.com/oukeidos/wcgen/internal/logger"
	"github.com/oukeidos/wcgen/internal/settings"
)

const (
	windowTitle  = "Word Cloud Generator"
	windowWidth  = 650
	windowHeight = 700

	statusReady      = "Ready"
	statusProcessing = "Status: Processing..."

	noInputText  = "No input file selected."
	noOutputText = "No output path set."
)

// AppState is the coarse lifecycle of the window.
type AppState int

const (
	StateIdle AppState = iota
	StateProcessing
	StateSuccess
	StateFailure
)

// uiState is the single record of everything the controller knows. It is
// only touched on the UI goroutine.
type uiState struct {
	InputPath  string
	OutputPath string
	DarkMode   bool
	Phase      AppState
	Status     string
}

// canGenerate is the enablement rule for the Generate button.
func canGenerate(s uiState) bool {
	return s.InputPath != "" && s.OutputPath != "" && s.Phase != StateProcessing
}

type generationStarter interface {
	Start(ctx context.Context, req generator.Request, out chan<- generator.Result) error
}

type wcgenApp struct {
	app    fyne.App
	window fyne.Window
	store  *settings.Store
	worker generationStarter

	state   uiState
	palette ThemePalette

	results  chan generator.Result
	quit     chan struct{}
	quitOnce sync.Once

	panicNoticeOnce sync.Once

	// Themed canvas objects.
	background      *canvas.Rectangle
	headerText      *canvas.Text
	fileTitle       *canvas.Text
	fileBorder      *canvas.Rectangle
	fileInner       *canvas.Rectangle
	inputPathText   *canvas.Text
	outputPathText  *canvas.Text
	exclusionTitle  *canvas.Text
	exclusionBorder *canvas.Rectangle
	statusBg        *canvas.Rectangle
	statusText      *canvas.Text

	darkModeCheck  *widget.Check
	exclusionEntry *widget.Entry

	inputButton    *roundedButton
	outputButton   *roundedButton
	importButton   *roundedButton
	clearButton    *roundedButton
	generateButton *roundedButton

	// Dialog and picker seams; tests replace them.
	showInfo  func(title, message string)
	showError func(message string)
	pickOpen  func(title string, exts []string, onChosen func(path string))
	pickSave  func(title, defaultName string, exts []string, onChosen func(path string))
}

func newWcgenApp(a fyne.App, w fyne.Window, store *settings.Store, worker generationStarter) *wcgenApp {
	loaded := store.Load()
	wa := &wcgenApp{
		app:     a,
		window:  w,
		store:   store,
		worker:  worker,
		state:   uiState{DarkMode: loaded.DarkMode, Status: statusReady},
		palette: paletteFor(loaded.DarkMode),
		results: make(chan generator.Result, 1),
		quit:    make(chan struct{}),
	}
	wa.showInfo = func(title, message string) { dialog.ShowInformation(title, message, wa.window) }
	wa.showError = func(message string) { dialog.ShowInformation("Error", message, wa.window) }
	wa.pickOpen = wa.showOpenDialog
	wa.pickSave = wa.showSaveDialog

	w.SetContent(wa.buildContent(loaded.ExclusionList))
	wa.applyTheme()
	wa.updateGenerateButton()
	wa.safeGo("ops.results", wa.drainResults)
	return wa
}

func (a *wcgenApp) buildContent(exclusionText string) fyne.CanvasObject {
	p := a.palette

	a.background = canvas.NewRectangle(p.Background)

	a.headerText = canvas.NewText(windowTitle, p.Foreground)
	a.headerText.TextSize = 20
	a.headerText.TextStyle = fyne.TextStyle{Bold: true}

	a.darkModeCheck = widget.NewCheck("Dark Mode", a.setDarkMode)
	a.darkModeCheck.SetChecked(a.state.DarkMode)

	aboutButton := widget.NewButtonWithIcon("", theme.InfoIcon(), a.showAbout)
	aboutButton.Importance = widget.LowImportance

	header := container.NewHBox(a.headerText, layout.NewSpacer(), a.darkModeCheck, aboutButton)

	a.inputButton = newRoundedButton("Select Input .txt File", primaryButtonStyle, p.Button, a.selectInputFile)
	a.outputButton = newRoundedButton("Set Output Image Path", primaryButtonStyle, p.Button, a.setOutputFile)
	a.importButton = newRoundedButton("Import", smallButtonStyle, p.Button, a.importExclusionList)
	a.clearButton = newRoundedButton("Clear", smallButtonStyle, p.Button, a.clearExclusionList)
	a.generateButton = newRoundedButton("3. Generate Word Cloud", primaryButtonStyle, p.Button, a.startGeneration)

	a.inputPathText = canvas.NewText(noInputText, p.Muted)
	a.outputPathText = canvas.NewText(noOutputText, p.Muted)

	a.fileTitle = canvas.NewText("1. Select Files", p.Foreground)
	a.fileBorder = canvas.NewRectangle(p.Foreground)
	a.fileInner = canvas.NewRectangle(p.TextBackground)
	fileBody := container.NewVBox(
		container.NewCenter(a.inputButton),
		container.NewPadded(a.inputPathText),
		container.NewCenter(a.outputButton),
		container.NewPadded(a.outputPathText),
	)
	fileSection := container.NewVBox(
		a.fileTitle,
		bordered(a.fileBorder, container.NewStack(a.fileInner, container.NewPadded(fileBody))),
	)

	a.exclusionTitle = canvas.NewText("2. Edit Exclusion List (one per line)", p.Foreground)
	exclusionHeader := container.NewHBox(a.exclusionTitle, layout.NewSpacer(), a.importButton, a.clearButton)

	a.exclusionEntry = widget.NewMultiLineEntry()
	a.exclusionEntry.Wrapping = fyne.TextWrapWord
	a.exclusionEntry.SetText(exclusionText)
	a.exclusionBorder = canvas.NewRectangle(p.Foreground)

	body := container.NewBorder(
		container.NewVBox(header, fileSection, exclusionHeader),
		container.NewCenter(a.generateButton),
		nil, nil,
		bordered(a.exclusionBorder, a.exclusionEntry),
	)

	a.statusBg = canvas.NewRectangle(p.StatusBackground)
	a.statusText = canvas.NewText(a.state.Status, p.Foreground)
	statusBar := container.NewStack(a.statusBg, container.NewPadded(a.statusText))

	return container.NewBorder(nil, statusBar, nil, nil,
		container.NewStack(a.background, container.NewPadded(body)))
}

// bordered draws a 1px frame of the rectangle's colour around content.
func bordered(frame *canvas.Rectangle, content fyne.CanvasObject) fyne.CanvasObject {
	return container.NewStack(frame, container.New(layout.NewCustomPaddedLayout(1, 1, 1, 1), content))
}

// themedButtons lists every roundedButton the palette applies to.
func (a *wcgenApp) themedButtons() []*roundedButton {
	return []*roundedButton{a.inputButton, a.outputButton, a.importButton, a.clearButton, a.generateButton}
}

// applyTheme pushes the active palette into every themed object.
func (a *wcgenApp) applyTheme() {
	p := a.palette
	if a.app != nil {
		a.app.Settings().SetTheme(newPaletteTheme(a.state.DarkMode))
	}

	a.background.FillColor = p.Background
	a.fileBorder.FillColor = p.Foreground
	a.fileInner.FillColor = p.TextBackground
	a.exclusionBorder.FillColor = p.Foreground
	a.statusBg.FillColor = p.StatusBackground
	for _, t := range []*canvas.Text{a.headerText, a.fileTitle, a.exclusionTitle, a.statusText} {
		t.Color = p.Foreground
	}
	a.inputPathText.Color = p.Muted
	a.outputPathText.Color = p.Muted

	for _, b := range a.themedButtons() {
		b.SetPalette(p.Button)
	}
	for _, o := range []fyne.CanvasObject{
		a.background, a.fileBorder, a.fileInner, a.exclusionBorder, a.statusBg,
		a.headerText, a.fileTitle, a.exclusionTitle, a.statusText, a.inputPathText, a.outputPathText,
	} {
		o.Refresh()
	}
}

// setDarkMode is the check box callback.
func (a *wcgenApp) setDarkMode(dark bool) {
	if dark == a.state.DarkMode {
		return
	}
	a.state.DarkMode = dark
	a.palette = paletteFor(dark)
	logger.Debug("Theme changed", "theme", a.palette.Name)
	a.applyTheme()
}

// toggleTheme swaps light and dark.
func (a *wcgenApp) toggleTheme() {
	a.setDarkMode(!a.state.DarkMode)
	if a.darkModeCheck.Checked != a.state.DarkMode {
		a.darkModeCheck.SetChecked(a.state.DarkMode)
	}
}

func (a *wcgenApp) updateGenerateButton() {
	if canGenerate(a.state) {
		a.generateButton.Enable()
	} else {
		a.generateButton.Disable()
	}
}

func (a *wcgenApp) setStatus(text string) {
	a.state.Status = text
	a.statusText.Text = text
	a.statusText.Refresh()
}

func (a *wcgenApp) setPhase(s AppState) {
	a.state.Phase = s
	a.updateGenerateButton()
}

func (a *wcgenApp) setInputPath(path string) {
	if path == "" {
		return
	}
	a.state.InputPath = path
	a.inputPathText.Text = "Input: " + path
	a.inputPathText.Refresh()
	a.updateGenerateButton()
}

func (a *wcgenApp) setOutputPath(path string) {
	if path == "" {
		return
	}
	a.state.OutputPath = path
	a.outputPathText.Text = "Output: " + path
	a.outputPathText.Refresh()
	a.updateGenerateButton()
}

func (a *wcgenApp) clearExclusionList() {
	a.exclusionEntry.SetText("")
}

// appendExclusions joins imported text onto the current exclusion text with
// a single newline, or returns it unchanged when the current text is blank.
func appendExclusions(current, imported string) string {
	if strings.TrimSpace(current) == "" {
		return imported
	}
	return strings.TrimRight(current, "\r\n") + "\n" + imported
}

// currentSettings is what gets persisted on shutdown.
func (a *wcgenApp) currentSettings() settings.AppSettings {
	return settings.AppSettings{
		DarkMode:      a.state.DarkMode,
		ExclusionList: strings.TrimSpace(a.exclusionEntry.Text),
	}
}

// shutdown saves settings and stops the result dispatcher. A failed save is
// logged and never blocks closing.
func (a *wcgenApp) shutdown() {
	if err := a.store.Save(a.currentSettings()); err != nil {
		logger.Error("Failed to save settings", "path", a.store.Path(), "error", err)
	}
	a.quitOnce.Do(func() { close(a.quit) })
}
