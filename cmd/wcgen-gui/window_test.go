package main

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/oukeidos/wcgen/internal/apperrors"
	"github.com/oukeidos/wcgen/internal/generator"
	"github.com/oukeidos/wcgen/internal/render"
	"github.com/oukeidos/wcgen/internal/settings"
)

type fakeWorker struct {
	requests []generator.Request
	err      error
}

func (f *fakeWorker) Start(_ context.Context, req generator.Request, _ chan<- generator.Result) error {
	f.requests = append(f.requests, req)
	return f.err
}

type dialogLog struct {
	infos  []string
	errors []string
}

func newTestWcgenApp(t *testing.T, worker generationStarter) (*wcgenApp, *dialogLog) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow(windowTitle)
	t.Cleanup(w.Close)
	store := settings.NewStore(filepath.Join(t.TempDir(), settings.FileName))
	if worker == nil {
		worker = &fakeWorker{}
	}
	wa := newWcgenApp(a, w, store, worker)
	t.Cleanup(func() { wa.quitOnce.Do(func() { close(wa.quit) }) })

	log := &dialogLog{}
	wa.showInfo = func(_, message string) { log.infos = append(log.infos, message) }
	wa.showError = func(message string) { log.errors = append(log.errors, message) }
	return wa, log
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCanGenerate(t *testing.T) {
	cases := []struct {
		name  string
		state uiState
		want  bool
	}{
		{"nothing set", uiState{}, false},
		{"input only", uiState{InputPath: "in.txt"}, false},
		{"output only", uiState{OutputPath: "out.png"}, false},
		{"both set", uiState{InputPath: "in.txt", OutputPath: "out.png"}, true},
		{"both set while running", uiState{InputPath: "in.txt", OutputPath: "out.png", Phase: StateProcessing}, false},
		{"both set after failure", uiState{InputPath: "in.txt", OutputPath: "out.png", Phase: StateFailure}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canGenerate(tc.state); got != tc.want {
				t.Fatalf("canGenerate(%+v) = %v, want %v", tc.state, got, tc.want)
			}
		})
	}
}

func TestGenerateButtonFollowsPaths(t *testing.T) {
	wa, _ := newTestWcgenApp(t, nil)
	if !wa.generateButton.Disabled() {
		t.Fatalf("generate should start disabled")
	}
	wa.setInputPath("in.txt")
	if !wa.generateButton.Disabled() {
		t.Fatalf("generate enabled with only an input path")
	}
	wa.setOutputPath("")
	if !wa.generateButton.Disabled() || wa.state.OutputPath != "" {
		t.Fatalf("empty selection must be ignored")
	}
	for i := 0; i < 2; i++ {
		wa.setOutputPath("out.png")
		if wa.generateButton.Disabled() {
			t.Fatalf("generate disabled with both paths (repeat %d)", i)
		}
	}
	if wa.inputPathText.Text != "Input: in.txt" || wa.outputPathText.Text != "Output: out.png" {
		t.Fatalf("labels = %q / %q", wa.inputPathText.Text, wa.outputPathText.Text)
	}
}

func TestInitialLabels(t *testing.T) {
	wa, _ := newTestWcgenApp(t, nil)
	if wa.inputPathText.Text != noInputText || wa.outputPathText.Text != noOutputText {
		t.Fatalf("labels = %q / %q", wa.inputPathText.Text, wa.outputPathText.Text)
	}
	if wa.statusText.Text != statusReady {
		t.Fatalf("status = %q, want %q", wa.statusText.Text, statusReady)
	}
	if wa.exclusionEntry.Text != settings.Defaults().ExclusionList {
		t.Fatalf("exclusion text should start from the defaults")
	}
}

func TestAppendExclusions(t *testing.T) {
	cases := []struct {
		current, imported, want string
	}{
		{"", "foo\nbar", "foo\nbar"},
		{"  \n", "foo", "foo"},
		{"a", "foo", "a\nfoo"},
		{"a\n", "foo", "a\nfoo"},
		{"a\n\n", "foo\n", "a\nfoo\n"},
	}
	for _, tc := range cases {
		if got := appendExclusions(tc.current, tc.imported); got != tc.want {
			t.Errorf("appendExclusions(%q, %q) = %q, want %q", tc.current, tc.imported, got, tc.want)
		}
	}
}

func TestImportExclusions(t *testing.T) {
	wa, log := newTestWcgenApp(t, nil)
	wa.clearExclusionList()
	path := writeFile(t, "extra.txt", "alpha\nbeta")

	wa.importExclusionsFrom(path)
	if wa.exclusionEntry.Text != "alpha\nbeta" {
		t.Fatalf("text after first import = %q", wa.exclusionEntry.Text)
	}
	wa.importExclusionsFrom(path)
	if wa.exclusionEntry.Text != "alpha\nbeta\nalpha\nbeta" {
		t.Fatalf("text after second import = %q", wa.exclusionEntry.Text)
	}
	if len(log.infos) != 2 || log.infos[0] != "Exclusion list imported successfully." {
		t.Fatalf("infos = %v", log.infos)
	}
}

func TestImportExclusions_MissingFile(t *testing.T) {
	wa, log := newTestWcgenApp(t, nil)
	wa.exclusionEntry.SetText("keep")
	wa.importExclusionsFrom(filepath.Join(t.TempDir(), "nope.txt"))
	if wa.exclusionEntry.Text != "keep" {
		t.Fatalf("text changed on failure: %q", wa.exclusionEntry.Text)
	}
	if len(log.errors) != 1 || !strings.HasPrefix(log.errors[0], "Failed to import file: ") {
		t.Fatalf("errors = %v", log.errors)
	}
}

func TestClearExclusionList(t *testing.T) {
	wa, _ := newTestWcgenApp(t, nil)
	for _, initial := range []string{"", "a\nb", "   "} {
		wa.exclusionEntry.SetText(initial)
		wa.clearExclusionList()
		if wa.exclusionEntry.Text != "" {
			t.Fatalf("clear left %q", wa.exclusionEntry.Text)
		}
	}
}

func themedColors(wa *wcgenApp) []color.Color {
	out := []color.Color{
		wa.background.FillColor, wa.fileBorder.FillColor, wa.fileInner.FillColor,
		wa.exclusionBorder.FillColor, wa.statusBg.FillColor,
		wa.headerText.Color, wa.fileTitle.Color, wa.exclusionTitle.Color,
		wa.statusText.Color, wa.inputPathText.Color, wa.outputPathText.Color,
	}
	for _, b := range wa.themedButtons() {
		out = append(out, b.palette.Normal, b.palette.Hover, b.palette.Pressed, b.palette.Disabled, b.palette.Foreground)
	}
	return out
}

func TestToggleThemeTwiceRestoresPalette(t *testing.T) {
	wa, _ := newTestWcgenApp(t, nil)
	before := themedColors(wa)

	wa.toggleTheme()
	if !wa.state.DarkMode || !wa.darkModeCheck.Checked {
		t.Fatalf("first toggle should enable dark mode")
	}
	if wa.background.FillColor != darkPalette().Background {
		t.Fatalf("background = %v, want dark", wa.background.FillColor)
	}
	for _, b := range wa.themedButtons() {
		if b.palette != darkPalette().Button {
			t.Fatalf("button %q not re-themed", b.label)
		}
	}

	wa.toggleTheme()
	after := themedColors(wa)
	if len(before) != len(after) {
		t.Fatalf("snapshot size changed")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("colour %d = %v, want %v", i, after[i], before[i])
		}
	}
	if wa.state.DarkMode || wa.darkModeCheck.Checked {
		t.Fatalf("second toggle should restore light mode")
	}
}

func TestDarkModeCheckDrivesTheme(t *testing.T) {
	wa, _ := newTestWcgenApp(t, nil)
	wa.darkModeCheck.SetChecked(true)
	if !wa.state.DarkMode || wa.statusBg.FillColor != darkPalette().StatusBackground {
		t.Fatalf("check did not switch to dark mode")
	}
}

func TestStartGeneration(t *testing.T) {
	worker := &fakeWorker{}
	wa, log := newTestWcgenApp(t, worker)
	wa.exclusionEntry.SetText("Foo\n\n bar ")
	wa.startGeneration()
	if len(worker.requests) != 0 {
		t.Fatalf("generation started without paths")
	}

	wa.setInputPath("in.txt")
	wa.setOutputPath("out.png")
	wa.startGeneration()
	if len(worker.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(worker.requests))
	}
	req := worker.requests[0]
	if req.InputPath != "in.txt" || req.OutputPath != "out.png" {
		t.Fatalf("request = %+v", req)
	}
	if !req.ExclusionWords.Contains("foo") || !req.ExclusionWords.Contains("bar") || len(req.ExclusionWords) != 2 {
		t.Fatalf("exclusions = %v", req.ExclusionWords.Words())
	}
	if wa.statusText.Text != statusProcessing || !wa.generateButton.Disabled() {
		t.Fatalf("status = %q, disabled = %v", wa.statusText.Text, wa.generateButton.Disabled())
	}

	wa.onGenerationComplete(generator.Result{RequestID: req.ID, Status: generator.StatusSuccess, OutputPath: "out.png"})
	if wa.statusText.Text != "Status: Success! Saved to out.png" {
		t.Fatalf("status = %q", wa.statusText.Text)
	}
	if wa.generateButton.Disabled() {
		t.Fatalf("generate should be enabled again")
	}
	if len(log.infos) != 1 || log.infos[0] != "Word cloud saved successfully to:\nout.png" {
		t.Fatalf("infos = %v", log.infos)
	}
}

func TestGenerationFailureIsReported(t *testing.T) {
	wa, log := newTestWcgenApp(t, nil)
	wa.setInputPath("in.txt")
	wa.setOutputPath("out.png")
	wa.setPhase(StateProcessing)

	wa.onGenerationComplete(generator.Result{Status: generator.StatusFailure, Message: "boom"})
	if wa.statusText.Text != "Status: Error - boom" {
		t.Fatalf("status = %q", wa.statusText.Text)
	}
	if len(log.errors) != 1 || log.errors[0] != "An unexpected error occurred: boom" {
		t.Fatalf("errors = %v", log.errors)
	}
	if wa.generateButton.Disabled() {
		t.Fatalf("generate should be enabled after a failure")
	}
}

func TestBusyWorkerBecomesFailure(t *testing.T) {
	wa, log := newTestWcgenApp(t, &fakeWorker{err: apperrors.Busy()})
	wa.setInputPath("in.txt")
	wa.setOutputPath("out.png")
	wa.startGeneration()
	if wa.state.Phase != StateFailure || len(log.errors) != 1 {
		t.Fatalf("phase = %v, errors = %v", wa.state.Phase, log.errors)
	}
}

func TestGenerationEndToEnd(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Width, opts.Height, opts.Seed = 200, 100, 3
	r, err := render.New(opts)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	worker, err := generator.NewWorker(r)
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}
	wa, _ := newTestWcgenApp(t, worker)

	in := writeFile(t, "in.txt", "cat cat dog")
	out := filepath.Join(t.TempDir(), "cloud.png")
	wa.setInputPath(in)
	wa.setOutputPath(out)
	wa.startGeneration()

	deadline := time.Now().Add(10 * time.Second)
	for !strings.HasPrefix(wa.statusText.Text, "Status: Success!") {
		if time.Now().After(deadline) {
			t.Fatalf("no success status, last = %q", wa.statusText.Text)
		}
		time.Sleep(10 * time.Millisecond)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestShutdownSavesTrimmedSettings(t *testing.T) {
	wa, _ := newTestWcgenApp(t, nil)
	wa.toggleTheme()
	wa.exclusionEntry.SetText("\n  spam\neggs \n")
	wa.shutdown()

	got := wa.store.Load()
	want := settings.AppSettings{DarkMode: true, ExclusionList: "spam\neggs"}
	if got != want {
		t.Fatalf("saved = %+v, want %+v", got, want)
	}
}

func TestShutdownSaveFailureDoesNotPanic(t *testing.T) {
	wa, _ := newTestWcgenApp(t, nil)
	wa.store = settings.NewStore(filepath.Join(t.TempDir(), "missing", settings.FileName))
	wa.shutdown()
	wa.shutdown()
}

func TestLoadsDarkModeFromSettings(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow(windowTitle)
	t.Cleanup(w.Close)
	store := settings.NewStore(filepath.Join(t.TempDir(), settings.FileName))
	if err := store.Save(settings.AppSettings{DarkMode: true, ExclusionList: "x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	wa := newWcgenApp(a, w, store, &fakeWorker{})
	t.Cleanup(func() { wa.quitOnce.Do(func() { close(wa.quit) }) })

	if !wa.state.DarkMode || !wa.darkModeCheck.Checked || wa.exclusionEntry.Text != "x" {
		t.Fatalf("state = %+v, checked = %v, text = %q", wa.state, wa.darkModeCheck.Checked, wa.exclusionEntry.Text)
	}
	if wa.background.FillColor != darkPalette().Background {
		t.Fatalf("background = %v, want dark", wa.background.FillColor)
	}
}

func TestEnsurePNGExtension(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"/tmp/cloud":      "/tmp/cloud.png",
		"/tmp/cloud.png":  "/tmp/cloud.png",
		"/tmp/cloud.jpeg": "/tmp/cloud.jpeg",
		"/tmp/v1.2/cloud": "/tmp/v1.2/cloud.png",
	}
	for in, want := range cases {
		if got := ensurePNGExtension(in); got != want {
			t.Errorf("ensurePNGExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRemoveIfEmpty(t *testing.T) {
	empty := writeFile(t, "empty.png", "")
	full := writeFile(t, "full.png", "data")
	removeIfEmpty(empty)
	removeIfEmpty(full)
	removeIfEmpty(filepath.Join(t.TempDir(), "missing.png"))
	if _, err := os.Stat(empty); !os.IsNotExist(err) {
		t.Fatalf("empty placeholder should be removed")
	}
	if _, err := os.Stat(full); err != nil {
		t.Fatalf("non-empty file must be kept: %v", err)
	}
}

func TestAppSafeDoRecoversIntoFailure(t *testing.T) {
	wa, log := newTestWcgenApp(t, nil)
	wa.safeDo("test.panic", func() { panic("kaboom") })
	if wa.state.Phase != StateFailure || !strings.Contains(wa.statusText.Text, "kaboom") {
		t.Fatalf("phase = %v, status = %q", wa.state.Phase, wa.statusText.Text)
	}
	if len(log.errors) != 1 {
		t.Fatalf("panic notice count = %d, want 1", len(log.errors))
	}
}
