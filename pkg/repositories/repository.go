package repositories

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cbodonnell/pairs/pkg/repositories/models"
)

const (
	// SoloResultsLimit is the size of the hall of fame.
	SoloResultsLimit = 10
	// BattleResultsLimit is the number of recent battles listed.
	BattleResultsLimit = 10
)

type Repository interface {
	Close(ctx context.Context) error
	ListCards(ctx context.Context) ([]*models.Card, error)
	SaveSoloResult(ctx context.Context, result *models.SoloResult) (*models.SoloResult, error)
	GetSoloResult(ctx context.Context, id int64) (*models.SoloResult, error)
	// ListSoloResults returns up to limit entries, hardest difficulty first,
	// then fastest time, then fewest reveals.
	ListSoloResults(ctx context.Context, limit int) ([]*models.SoloResult, error)
	SaveBattleResult(ctx context.Context, result *models.BattleResult) (*models.BattleResult, error)
	GetBattleResult(ctx context.Context, id int64) (*models.BattleResult, error)
	// ListBattleResults returns up to limit battles, newest first.
	ListBattleResults(ctx context.Context, limit int) ([]*models.BattleResult, error)
}

// NewRepositoryFromURL opens the store named by connStr. Supported schemes
// are sqlite://<path>, postgresql://... and memory://.
func NewRepositoryFromURL(ctx context.Context, connStr string, sqliteMigrations string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		path := u.Host + u.Path
		if path == "" {
			return nil, fmt.Errorf("sqlite connection string has no path")
		}
		return NewSQLiteRepository(ctx, path, sqliteMigrations)
	case "postgresql", "postgres":
		return NewPostgresRepository(ctx, u.String())
	case "memory":
		return NewInMemoryRepository(DefaultCards()), nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
