package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxNumberedCandidates = 9

// SafePath returns path itself when nothing exists there yet. Otherwise it
// tries name_1.ext .. name_9.ext and finally a UUID suffix. The bool reports
// whether the returned path differs from the requested one.
func SafePath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		return "", false, fmt.Errorf("path is empty")
	}
	free, err := isFree(path)
	if err != nil {
		return "", false, err
	}
	if free {
		return path, false, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; i <= maxNumberedCandidates; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		free, err := isFree(candidate)
		if err != nil {
			return "", false, err
		}
		if free {
			return candidate, true, nil
		}
	}

	suffix := uuid.NewString()
	if id, err := uuid.NewV7(); err == nil {
		suffix = id.String()
	}
	return fmt.Sprintf("%s_%s%s", stem, suffix, ext), true, nil
}

func isFree(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, err
	}
}
