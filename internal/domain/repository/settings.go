package repository

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// SettingsRepository persists the user settings record.
type SettingsRepository interface {
	// Load returns the stored settings merged over defaults. When the stored
	// record is corrupt it returns the defaults along with the decode error.
	Load(ctx context.Context) (entity.Settings, error)
	Save(ctx context.Context, settings entity.Settings) error
}
