package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// SettingsListener is notified after settings are saved.
type SettingsListener func(entity.Settings)

// ManageSettingsUseCase owns the current settings record and fans out
// updates to listeners.
type ManageSettingsUseCase struct {
	repo repository.SettingsRepository

	mu        sync.Mutex
	current   entity.Settings
	listeners map[int]SettingsListener
	nextID    int
}

// NewManageSettingsUseCase creates a settings use case primed with defaults.
func NewManageSettingsUseCase(repo repository.SettingsRepository) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{
		repo:      repo,
		current:   entity.DefaultSettings(),
		listeners: make(map[int]SettingsListener),
	}
}

// Load reads the stored record. Unreadable or corrupt records are logged and
// replaced by defaults.
func (uc *ManageSettingsUseCase) Load(ctx context.Context) entity.Settings {
	settings, err := uc.repo.Load(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("settings unreadable, using defaults")
		settings = entity.DefaultSettings()
	}

	uc.mu.Lock()
	uc.current = settings
	uc.mu.Unlock()
	return settings
}

// Current returns the in-memory settings.
func (uc *ManageSettingsUseCase) Current() entity.Settings {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current
}

// Update applies mutate to a copy of the current settings, persists the
// result and notifies listeners.
func (uc *ManageSettingsUseCase) Update(ctx context.Context, mutate func(*entity.Settings)) (entity.Settings, error) {
	next := uc.Current()
	mutate(&next)
	return uc.Save(ctx, next)
}

// Save persists settings and notifies listeners.
func (uc *ManageSettingsUseCase) Save(ctx context.Context, settings entity.Settings) (entity.Settings, error) {
	settings.Normalize()
	if err := uc.repo.Save(ctx, settings); err != nil {
		return uc.Current(), fmt.Errorf("save settings: %w", err)
	}

	uc.mu.Lock()
	uc.current = settings
	listeners := make([]SettingsListener, 0, len(uc.listeners))
	for _, l := range uc.listeners {
		listeners = append(listeners, l)
	}
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Int("listeners", len(listeners)).Msg("settings saved")
	for _, l := range listeners {
		l(settings)
	}
	return settings, nil
}

// Subscribe registers l and returns a function that removes it.
func (uc *ManageSettingsUseCase) Subscribe(l SettingsListener) (unsubscribe func()) {
	uc.mu.Lock()
	id := uc.nextID
	uc.nextID++
	uc.listeners[id] = l
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		delete(uc.listeners, id)
		uc.mu.Unlock()
	}
}
