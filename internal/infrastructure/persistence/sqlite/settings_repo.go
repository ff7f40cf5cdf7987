package sqlite

import (
	"context"
	"database/sql"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

type settingsRepo struct {
	kv kvStore
}

// NewSettingsRepository creates a new SQLite-backed settings repository.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{kv: kvStore{db: db}}
}

func (r *settingsRepo) Load(ctx context.Context) (entity.Settings, error) {
	raw, found, err := r.kv.get(ctx, keySettings)
	if err != nil {
		return entity.DefaultSettings(), err
	}
	if !found {
		return entity.DefaultSettings(), nil
	}
	return entity.DecodeSettings([]byte(raw))
}

func (r *settingsRepo) Save(ctx context.Context, settings entity.Settings) error {
	logging.FromContext(ctx).Debug().Str("theme", string(settings.Theme)).Msg("saving settings")
	return r.kv.putJSON(ctx, keySettings, settings)
}
