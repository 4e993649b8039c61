package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cbodonnell/pairs/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and runs every migration
// in the migrations directory in file name order. Migrations must be
// idempotent since they run on every start.
func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// a single writer avoids SQLITE_BUSY between the API handlers
	db.SetMaxOpenConns(1)

	dir, err := os.ReadDir(migrations)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(dir, func(i, j int) bool {
		return dir[i].Name() < dir[j].Name()
	})

	for _, entry := range dir {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) ListCards(ctx context.Context) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, emoji FROM cards ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %v", err)
	}
	defer rows.Close()

	cards := []*models.Card{}
	for rows.Next() {
		card := &models.Card{}
		if err := rows.Scan(&card.ID, &card.Name, &card.Emoji); err != nil {
			return nil, fmt.Errorf("failed to scan card: %v", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %v", err)
	}

	return cards, nil
}

func (r *SQLiteRepository) SaveSoloResult(ctx context.Context, result *models.SoloResult) (*models.SoloResult, error) {
	q := `
	INSERT INTO hall_of_fame (name, difficulty, time_seconds, reveals, created_at)
	VALUES (?, ?, ?, ?, ?);
	`
	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, q, result.Name, result.Difficulty, result.TimeSeconds, result.Reveals, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert solo result: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get solo result id: %v", err)
	}

	saved := *result
	saved.ID = id
	saved.CreatedAt = createdAt
	return &saved, nil
}

func (r *SQLiteRepository) GetSoloResult(ctx context.Context, id int64) (*models.SoloResult, error) {
	q := `
	SELECT id, name, difficulty, time_seconds, reveals, created_at FROM hall_of_fame WHERE id = ?;
	`
	result := &models.SoloResult{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&result.ID, &result.Name, &result.Difficulty, &result.TimeSeconds, &result.Reveals, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan solo result: %v", err)
	}

	return result, nil
}

func (r *SQLiteRepository) ListSoloResults(ctx context.Context, limit int) ([]*models.SoloResult, error) {
	q := `
	SELECT id, name, difficulty, time_seconds, reveals, created_at FROM hall_of_fame
	ORDER BY ` + soloResultOrderSQL + `
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query solo results: %v", err)
	}
	defer rows.Close()

	results := []*models.SoloResult{}
	for rows.Next() {
		result := &models.SoloResult{}
		if err := rows.Scan(&result.ID, &result.Name, &result.Difficulty, &result.TimeSeconds, &result.Reveals, &result.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan solo result: %v", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate solo results: %v", err)
	}

	return results, nil
}

func (r *SQLiteRepository) SaveBattleResult(ctx context.Context, result *models.BattleResult) (*models.BattleResult, error) {
	q := `
	INSERT INTO battles (player1, player2, player1_score, player2_score, winner, difficulty, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, q, result.Player1, result.Player2, result.Player1Score, result.Player2Score, result.Winner, result.Difficulty, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert battle result: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get battle result id: %v", err)
	}

	saved := *result
	saved.ID = id
	saved.CreatedAt = createdAt
	return &saved, nil
}

func (r *SQLiteRepository) GetBattleResult(ctx context.Context, id int64) (*models.BattleResult, error) {
	q := `
	SELECT id, player1, player2, player1_score, player2_score, winner, difficulty, created_at FROM battles WHERE id = ?;
	`
	result := &models.BattleResult{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&result.ID, &result.Player1, &result.Player2, &result.Player1Score, &result.Player2Score, &result.Winner, &result.Difficulty, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan battle result: %v", err)
	}

	return result, nil
}

func (r *SQLiteRepository) ListBattleResults(ctx context.Context, limit int) ([]*models.BattleResult, error) {
	q := `
	SELECT id, player1, player2, player1_score, player2_score, winner, difficulty, created_at FROM battles
	ORDER BY created_at DESC, id DESC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query battle results: %v", err)
	}
	defer rows.Close()

	results := []*models.BattleResult{}
	for rows.Next() {
		result := &models.BattleResult{}
		if err := rows.Scan(&result.ID, &result.Player1, &result.Player2, &result.Player1Score, &result.Player2Score, &result.Winner, &result.Difficulty, &result.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan battle result: %v", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate battle results: %v", err)
	}

	return results, nil
}

// sqlLimit maps a non-positive limit to "no limit".
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
