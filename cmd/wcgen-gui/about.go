package main

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/wcgen/internal/licenses"
	"github.com/oukeidos/wcgen/internal/version"
)

const projectURL = "https://github.com/oukeidos/wcgen"

func (a *wcgenApp) showAbout() {
	notices := widget.NewButton("View Third-Party Notices", func() {
		text := licenses.NoticesText()
		if strings.TrimSpace(text) == "" {
			a.showError("Embedded third-party notices are empty.")
			return
		}
		showTextDialog(a.window, "Third-Party Notices", text)
	})

	body := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("App", widget.NewLabel(windowTitle)),
			widget.NewFormItem("Version", widget.NewLabel(version.Version)),
			widget.NewFormItem("Commit", widget.NewLabel(version.Commit)),
			widget.NewFormItem("Build", widget.NewLabel(version.BuildDate)),
			widget.NewFormItem("Settings", widget.NewLabel(a.store.Path())),
			widget.NewFormItem("Links", newHyperlink("GitHub", projectURL)),
		),
		notices,
	)
	dialog.ShowCustom("About", "Close", body, a.window)
}

func newHyperlink(label, raw string) *widget.Hyperlink {
	u, _ := url.Parse(raw)
	return widget.NewHyperlink(label, u)
}

// showTextDialog shows read-only text in a scrollable dialog.
func showTextDialog(w fyne.Window, title, text string) {
	entry := widget.NewMultiLineEntry()
	entry.SetText(text)
	entry.Wrapping = fyne.TextWrapWord
	lock := false
	entry.OnChanged = func(s string) {
		if lock || s == text {
			return
		}
		lock = true
		entry.SetText(text)
		lock = false
	}
	scroll := container.NewScroll(entry)
	scroll.SetMinSize(fyne.NewSize(520, 420))
	d := dialog.NewCustom(title, "Close", scroll, w)
	d.Resize(fyne.NewSize(560, 480))
	d.Show()
}
