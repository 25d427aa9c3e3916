package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/oukeidos/wcgen/internal/generator"
	"github.com/oukeidos/wcgen/internal/logger"
	"github.com/oukeidos/wcgen/internal/settings"
	"github.com/oukeidos/wcgen/internal/version"
)

const appID = "com.wcgen.app"

func main() {
	logger.Init(logger.LevelInfo, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
			os.Exit(1)
		}
	}()
	logger.Info("Starting", "version", version.Short())

	worker, err := generator.NewWorker(nil)
	if err != nil {
		logger.Fatal("Failed to initialise renderer", "error", err)
	}

	myApp := app.NewWithID(appID)
	w := myApp.NewWindow(windowTitle)
	w.SetMaster()
	w.Resize(fyne.NewSize(windowWidth, windowHeight))
	w.CenterOnScreen()

	wa := newWcgenApp(myApp, w, settings.NewStore(""), worker)
	w.SetCloseIntercept(func() {
		wa.shutdown()
		w.SetCloseIntercept(nil)
		w.Close()
	})

	w.ShowAndRun()
}
