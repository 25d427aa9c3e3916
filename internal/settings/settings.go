// Package settings persists the GUI's user preferences as a small JSON
// document in the user's home directory.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oukeidos/wcgen/internal/apperrors"
	"github.com/oukeidos/wcgen/internal/files"
	"github.com/oukeidos/wcgen/internal/logger"
)

// FileName is the settings document stored in the home directory.
const FileName = ".wordcloud_app_settings.json"

// AppSettings is the whole on-disk state.
type AppSettings struct {
	DarkMode      bool   `json:"dark_mode"`
	ExclusionList string `json:"exclusion_list"`
}

// DefaultExclusionWords is the built-in exclusion list: forum and platform
// noise that dominates scraped discussion threads.
var DefaultExclusionWords = []string{
	"author", "post", "content", "reddit", "score", "url", "subreddit",
	"title", "Steam", "Comment", "https", "Comments", "u", "account",
	"comments", "csgomarketforum", "SteamScams", "scam", "trade", "support",
	"png", "game", "csgo", "redd", "got", "skin", "item", "S", "will",
	"items", "one", "someone", "know", "scammed", "guy", "people",
}

// Defaults is light mode with the built-in exclusion list.
func Defaults() AppSettings {
	return AppSettings{
		DarkMode:      false,
		ExclusionList: strings.Join(DefaultExclusionWords, "\n"),
	}
}

// DefaultPath is ~/.wordcloud_app_settings.json, or the working directory
// when no home directory is known.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Store reads and writes one settings file.
type Store struct {
	path string
}

// NewStore returns a store for path. An empty path uses DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path is the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load never fails: a missing file yields Defaults silently, an unreadable
// or malformed one yields Defaults and a logged warning. Keys absent from the
// document keep their default values.
func (s *Store) Load() AppSettings {
	out, err := s.Read()
	if err != nil {
		logger.Warn("Using default settings", "path", s.path, "error", err)
		return Defaults()
	}
	return out
}

// Read is Load without the fallback: errors are returned to the caller.
// A missing file still yields Defaults.
func (s *Store) Read() (AppSettings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("Settings file not found", "path", s.path)
		return Defaults(), nil
	}
	if err != nil {
		return AppSettings{}, apperrors.SettingsLoad(err)
	}
	out := Defaults()
	if err := json.Unmarshal(data, &out); err != nil {
		return AppSettings{}, apperrors.SettingsLoad(err)
	}
	return out, nil
}

// Save replaces the whole document. The exclusion text is trimmed first.
func (s *Store) Save(in AppSettings) error {
	in.ExclusionList = strings.TrimSpace(in.ExclusionList)
	data, err := json.MarshalIndent(in, "", "    ")
	if err != nil {
		return apperrors.SettingsSave(err)
	}
	if err := files.AtomicWrite(s.path, data, 0o600); err != nil {
		return apperrors.SettingsSave(err)
	}
	logger.Debug("Settings saved", "path", s.path, "dark_mode", in.DarkMode)
	return nil
}
