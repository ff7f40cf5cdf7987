// Package ui is the terminal host window: a Bubble Tea program whose update
// loop is the single UI thread for tabs, chrome widgets and the sidebar.
package ui

import (
	"context"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/ui/theme"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to New.
type Dependencies struct {
	// Core context and configuration
	Ctx       context.Context
	Config    *config.Config
	Build     build.Info
	StartedAt time.Time
	// InitialURLs are opened on startup; empty opens the home address.
	InitialURLs []string

	Theme *theme.Manager

	// Browser engine
	Factory port.ContentViewFactory
	Engine  port.EnginePreferences // Optional
	Window  port.WindowController  // Optional
	Picker  port.DirectoryPicker   // Optional

	// Use Cases
	SettingsUC   *usecase.ManageSettingsUseCase
	SessionsUC   *usecase.ManageSessionsUseCase  // Optional
	NotesUC      *usecase.ManageNotesUseCase     // Optional
	ClipboardUC  *usecase.ManageClipboardUseCase // Optional
	HistoryUC    *usecase.RecordHistoryUseCase   // Optional
	ScreenshotUC *usecase.SaveScreenshotUseCase  // Optional
	ClearDataUC  *usecase.ClearDataUseCase       // Optional

	// SnapshotInterval is the autosave debounce; zero selects the default.
	SnapshotInterval time.Duration
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Theme == nil {
		return ErrMissingDependency("Theme")
	}
	if d.Factory == nil {
		return ErrMissingDependency("Factory")
	}
	if d.SettingsUC == nil {
		return ErrMissingDependency("SettingsUC")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
