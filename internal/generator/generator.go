// Package generator runs the "read text, count words, render, save PNG"
// pipeline, either inline or on a single background worker.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync/atomic"

	"github.com/oukeidos/wcgen/internal/apperrors"
	"github.com/oukeidos/wcgen/internal/files"
	"github.com/oukeidos/wcgen/internal/logger"
	"github.com/oukeidos/wcgen/internal/render"
	"github.com/oukeidos/wcgen/internal/stopwords"
	"github.com/oukeidos/wcgen/internal/textfreq"
)

// Renderer draws a frequency model. *render.Renderer satisfies it.
type Renderer interface {
	Render(ctx context.Context, freqs []textfreq.WordFrequency) (image.Image, error)
}

// State of the worker.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Worker runs at most one generation at a time.
type Worker struct {
	renderer Renderer
	state    atomic.Int32
}

// NewWorker returns a worker that renders with r. A nil r uses the default
// renderer options.
func NewWorker(r Renderer) (*Worker, error) {
	if r == nil {
		def, err := render.New(render.DefaultOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to create renderer: %w", err)
		}
		r = def
	}
	return &Worker{renderer: r}, nil
}

// State reports what the worker is doing.
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Start runs req on a new goroutine and sends its result to out. It returns
// a busy error when a run is already in flight. out should be buffered or
// actively drained.
func (w *Worker) Start(ctx context.Context, req Request, out chan<- Result) error {
	if !w.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return apperrors.Busy()
	}
	logger.Info("Generation started", "request_id", req.ID, "input", req.InputPath, "output", req.OutputPath)
	go func() {
		res := w.Generate(ctx, req)
		w.state.Store(int32(StateCompleted))
		logger.Info("Generation finished", "request_id", req.ID, "status", string(res.Status))
		w.state.Store(int32(StateIdle))
		out <- res
	}()
	return nil
}

// Generate runs req synchronously. It never panics; every failure is
// reported through the returned Result.
func (w *Worker) Generate(ctx context.Context, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic", "scope", "generator.generate", "request_id", req.ID, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			err := fmt.Errorf("internal error: %v", r)
			res = failure(req, err, err.Error())
		}
	}()

	if err := w.run(ctx, req); err != nil {
		logger.Error("Generation failed", "request_id", req.ID, "kind", kindLabel(err), "error", err)
		return failure(req, err, apperrors.PublicMessage(err))
	}
	return success(req)
}

func kindLabel(err error) string {
	if k, ok := apperrors.KindOf(err); ok {
		return string(k)
	}
	return "unknown"
}

func (w *Worker) run(ctx context.Context, req Request) error {
	if err := checkPaths(req.InputPath, req.OutputPath); err != nil {
		return err
	}

	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return apperrors.FileRead("Failed to read input file", err)
	}

	opts := textfreq.DefaultOptions()
	opts.Stopwords = stopwords.Merge(opts.Stopwords, req.ExclusionWords)
	freqs := textfreq.Count(string(data), opts)
	logger.Debug("Frequency model built", "request_id", req.ID, "distinct_words", len(freqs), "excluded", len(opts.Stopwords))

	img, err := w.renderer.Render(ctx, freqs)
	if err != nil {
		return apperrors.Render(err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return apperrors.Render(fmt.Errorf("failed to encode png: %w", err))
	}
	if err := files.AtomicWrite(req.OutputPath, buf.Bytes(), 0o644); err != nil {
		return apperrors.FileWrite("Failed to save image", err)
	}
	return nil
}

func checkPaths(inputPath, outputPath string) error {
	if inputPath == "" {
		return apperrors.FileRead("No input file selected", nil)
	}
	if outputPath == "" {
		return apperrors.FileWrite("No output path set", nil)
	}
	absIn, err := filepath.Abs(inputPath)
	if err != nil {
		return apperrors.FileRead("Failed to resolve input path", err)
	}
	absOut, err := filepath.Abs(outputPath)
	if err != nil {
		return apperrors.FileWrite("Failed to resolve output path", err)
	}
	if absIn == absOut {
		return apperrors.FileWrite("Input and output files are the same", fmt.Errorf("%s", absIn))
	}
	inInfo, inErr := os.Stat(absIn)
	outInfo, outErr := os.Stat(absOut)
	if inErr == nil && outErr == nil && os.SameFile(inInfo, outInfo) {
		return apperrors.FileWrite("Input and output files are the same", fmt.Errorf("%s", absIn))
	}
	return nil
}
