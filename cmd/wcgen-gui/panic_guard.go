package main

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/oukeidos/wcgen/internal/logger"
)

func withPanicGuard(scope string, onPanic func(any), fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic", "scope", scope, "panic", fmt.Sprint(r))
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	fn()
}

func safeGo(scope string, fn func()) {
	go func() {
		withPanicGuard(scope, nil, fn)
	}()
}

func safeDo(scope string, fn func()) {
	withPanicGuard(scope+".dispatch", nil, func() {
		fyne.Do(func() {
			withPanicGuard(scope, nil, fn)
		})
	})
}

func (a *wcgenApp) safeGo(scope string, fn func()) {
	if a == nil {
		safeGo(scope, fn)
		return
	}
	go func() {
		withPanicGuard(scope, func(r any) {
			a.handleRecoveredPanic(scope, r)
		}, fn)
	}()
}

func (a *wcgenApp) safeDo(scope string, fn func()) {
	if a == nil {
		safeDo(scope, fn)
		return
	}
	withPanicGuard(scope+".dispatch", func(r any) {
		a.handleRecoveredPanic(scope+".dispatch", r)
	}, func() {
		fyne.Do(func() {
			withPanicGuard(scope, func(r any) {
				a.handleRecoveredPanic(scope, r)
			}, fn)
		})
	})
}

// handleRecoveredPanic puts the window back into a usable state and tells
// the user once per session.
func (a *wcgenApp) handleRecoveredPanic(scope string, r any) {
	if a == nil || fyne.CurrentApp() == nil {
		return
	}
	fyne.Do(func() {
		withPanicGuard(scope+".recover", nil, func() {
			a.setPhase(StateFailure)
			a.setStatus(fmt.Sprintf("Status: Error - %v", r))
		})
	})
	a.panicNoticeOnce.Do(func() {
		safeDo("panic.notice", func() {
			if a.window == nil || a.showError == nil {
				return
			}
			a.showError("An internal error occurred and the current task was stopped. Please retry. If this repeats, restart the app.")
		})
	})
}
