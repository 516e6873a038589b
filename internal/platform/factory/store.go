package factory

import (
	"fmt"
	"time"

	"github.com/notepadhq/notepad-backend/internal/config"
	"github.com/notepadhq/notepad-backend/internal/store"
	"github.com/notepadhq/notepad-backend/internal/store/postgres"
	"github.com/notepadhq/notepad-backend/internal/store/postgrest"
	"github.com/notepadhq/notepad-backend/internal/store/sqlite"
)

// NewStore selects the correct store adapter based on cfg.DBDriver.
func NewStore(cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "postgrest":
		timeout := time.Duration(cfg.StoreTimeoutSeconds) * time.Second
		return postgrest.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, timeout), nil
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqlite.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
