package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/oukeidos/wcgen/internal/apperrors"
	"github.com/oukeidos/wcgen/internal/generator"
	"github.com/oukeidos/wcgen/internal/logger"
)

const defaultOutputName = "wordcloud.png"

func (a *wcgenApp) selectInputFile() {
	a.pickOpen("Select input .txt file", []string{".txt"}, a.setInputPath)
}

func (a *wcgenApp) setOutputFile() {
	a.pickSave("Save Word Cloud As...", defaultOutputName, []string{".png"}, func(path string) {
		a.setOutputPath(ensurePNGExtension(path))
	})
}

func (a *wcgenApp) importExclusionList() {
	a.pickOpen("Select exclusion list .txt file", []string{".txt"}, a.importExclusionsFrom)
}

// importExclusionsFrom appends the file's content to the exclusion text.
// Failures are reported and leave the text untouched.
func (a *wcgenApp) importExclusionsFrom(path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		err = apperrors.FileRead("Failed to import file", err)
		logger.Warn("Exclusion import failed", "path", path, "error", err)
		a.showError(apperrors.PublicMessage(err))
		return
	}
	a.exclusionEntry.SetText(appendExclusions(a.exclusionEntry.Text, string(data)))
	logger.Info("Exclusion list imported", "path", path, "bytes", len(data))
	a.showInfo("Success", "Exclusion list imported successfully.")
}

// ensurePNGExtension appends .png when the chosen name has no extension.
func ensurePNGExtension(path string) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + ".png"
}

func (a *wcgenApp) startGeneration() {
	if !canGenerate(a.state) {
		return
	}
	a.setPhase(StateProcessing)
	a.setStatus(statusProcessing)

	req := generator.NewRequest(a.state.InputPath, a.state.OutputPath, a.exclusionEntry.Text)
	if err := a.worker.Start(context.Background(), req, a.results); err != nil {
		a.onGenerationComplete(generator.Result{
			RequestID: req.ID,
			Status:    generator.StatusFailure,
			Message:   apperrors.PublicMessage(err),
			Err:       err,
		})
	}
}

// drainResults hands every worker result to the UI goroutine.
func (a *wcgenApp) drainResults() {
	for {
		select {
		case res := <-a.results:
			a.safeDo("ops.generation_complete", func() {
				a.onGenerationComplete(res)
			})
		case <-a.quit:
			return
		}
	}
}

func (a *wcgenApp) onGenerationComplete(res generator.Result) {
	if res.Status == generator.StatusSuccess {
		a.setPhase(StateSuccess)
		a.setStatus("Status: Success! Saved to " + res.OutputPath)
		a.showInfo("Success", "Word cloud saved successfully to:\n"+res.OutputPath)
		return
	}
	a.setPhase(StateFailure)
	a.setStatus("Status: Error - " + res.Message)
	a.showError("An unexpected error occurred: " + res.Message)
}

func (a *wcgenApp) showOpenDialog(title string, exts []string, onChosen func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError(fmt.Sprintf("Failed to open file: %v", err))
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onChosen(path)
	}, a.window)
	logger.Debug("File dialog opened", "title", title)
	fd.SetFilter(storage.NewExtensionFileFilter(exts))
	fd.Resize(dialogSize(a.window))
	fd.Show()
}

func (a *wcgenApp) showSaveDialog(title, defaultName string, exts []string, onChosen func(path string)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError(fmt.Sprintf("Failed to choose output file: %v", err))
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		// The dialog creates the file; the image is written later.
		removeIfEmpty(path)
		onChosen(path)
	}, a.window)
	logger.Debug("File dialog opened", "title", title)
	fd.SetFileName(defaultName)
	fd.SetFilter(storage.NewExtensionFileFilter(exts))
	fd.Resize(dialogSize(a.window))
	fd.Show()
}

func removeIfEmpty(path string) {
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() != 0 {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.Debug("Failed to remove placeholder file", "path", path, "error", err)
	}
}

func dialogSize(w fyne.Window) fyne.Size {
	s := w.Canvas().Size()
	if s.Width < 200 || s.Height < 200 {
		return fyne.NewSize(windowWidth-40, windowHeight-80)
	}
	return fyne.NewSize(s.Width-40, s.Height-80)
}

