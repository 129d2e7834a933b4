package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
)

// PreferenceService holds the process-wide UI preferences. They are loaded
// from a JSON file once at startup and written back on every change.
type PreferenceService struct {
	mu      sync.Mutex
	path    string
	current domain.Preferences
}

type preferenceRules struct {
	Theme string `json:"theme" validate:"oneof=light dark"`
}

// NewPreferenceService loads preferences from path. A missing file yields
// the defaults; an unreadable or malformed file is logged and also yields
// the defaults, and is overwritten on the next save.
func NewPreferenceService(path string) *PreferenceService {
	s := &PreferenceService{path: path, current: domain.DefaultPreferences()}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s
	case err != nil:
		slog.Warn("preferences unreadable, using defaults", "path", path, "error", err)
		return s
	}

	var p domain.Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("preferences malformed, using defaults", "path", path, "error", err)
		return s
	}
	if err := validateStruct(preferenceRules{Theme: string(p.Theme)}); err != nil {
		slog.Warn("preferences invalid, using defaults", "path", path, "error", err)
		return s
	}
	s.current = p
	return s
}

// Get returns the current preferences.
func (s *PreferenceService) Get(_ context.Context) domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update validates p, persists it, and makes it current.
// Returns domain.ErrValidation for an unknown theme. When the write fails the
// previous preferences stay current.
func (s *PreferenceService) Update(_ context.Context, p domain.Preferences) (domain.Preferences, error) {
	if err := validateStruct(preferenceRules{Theme: string(p.Theme)}); err != nil {
		return domain.Preferences{}, fmt.Errorf("service.PreferenceService.Update: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(p); err != nil {
		return domain.Preferences{}, fmt.Errorf("service.PreferenceService.Update: %w", err)
	}
	s.current = p
	return p, nil
}

// save writes p to a temp file beside the target and renames it into place.
func (s *PreferenceService) save(p domain.Preferences) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".preferences-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}
