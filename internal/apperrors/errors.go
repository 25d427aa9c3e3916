package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindFileRead     Kind = "file_read"
	KindFileWrite    Kind = "file_write"
	KindRender       Kind = "render"
	KindSettingsLoad Kind = "settings_load"
	KindSettingsSave Kind = "settings_save"
	KindBusy         Kind = "busy"
)

type Error struct {
	Kind Kind
	// Summary is the user-facing part of the message.
	Summary string
	// Cause keeps the underlying error; its text is appended to Summary.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := strings.TrimSpace(e.Summary)
	if msg == "" {
		msg = defaultSummary(e.Kind)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSummary(kind Kind) string {
	switch kind {
	case KindFileRead:
		return "Failed to read file"
	case KindFileWrite:
		return "Failed to write file"
	case KindRender:
		return "Failed to render word cloud"
	case KindSettingsLoad:
		return "Failed to load settings"
	case KindSettingsSave:
		return "Failed to save settings"
	case KindBusy:
		return "A generation is already running"
	default:
		return "Operation failed"
	}
}

func New(kind Kind, summary string, cause error) error {
	return &Error{
		Kind:    kind,
		Summary: strings.TrimSpace(summary),
		Cause:   cause,
	}
}

func FileRead(summary string, err error) error {
	return New(KindFileRead, summary, err)
}

func FileWrite(summary string, err error) error {
	return New(KindFileWrite, summary, err)
}

func Render(err error) error {
	return New(KindRender, "", err)
}

func SettingsLoad(err error) error {
	return New(KindSettingsLoad, "", err)
}

func SettingsSave(err error) error {
	return New(KindSettingsSave, "", err)
}

func Busy() error {
	return New(KindBusy, "", nil)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
