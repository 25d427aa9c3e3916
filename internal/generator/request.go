package generator

import (
	"github.com/google/uuid"

	"github.com/oukeidos/wcgen/internal/stopwords"
)

// Request is a snapshot of everything one generation needs. It is built on
// the UI goroutine and handed to the worker as a full copy.
type Request struct {
	ID         string
	InputPath  string
	OutputPath string
	// ExclusionWords are the user's custom words. The standard stopwords are
	// always added on top.
	ExclusionWords stopwords.Set
}

// NewRequest builds a request from the raw exclusion-list text.
func NewRequest(inputPath, outputPath, exclusionText string) Request {
	return Request{
		ID:             newRequestID(),
		InputPath:      inputPath,
		OutputPath:     outputPath,
		ExclusionWords: stopwords.ParseCustom(exclusionText),
	}
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Status is the terminal state of a generation run.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailure Status = "Failure"
)

// Result is delivered exactly once per started request. OutputPath is set on
// success, Message and Err on failure.
type Result struct {
	RequestID  string
	Status     Status
	OutputPath string
	Message    string
	Err        error
}

func success(req Request) Result {
	return Result{RequestID: req.ID, Status: StatusSuccess, OutputPath: req.OutputPath}
}

func failure(req Request, err error, message string) Result {
	return Result{RequestID: req.ID, Status: StatusFailure, Message: message, Err: err}
}
