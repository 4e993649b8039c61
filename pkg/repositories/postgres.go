package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository.
// The schema is expected to be migrated from migrations/postgres.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	pool, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}
	return &PostgresRepository{
		pool: pool,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return pool, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) ListCards(ctx context.Context) ([]*models.Card, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, name, emoji FROM cards ORDER BY id")
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

func (r *PostgresRepository) SaveSoloResult(ctx context.Context, result *models.SoloResult) (*models.SoloResult, error) {
	q := `
	INSERT INTO hall_of_fame (name, difficulty, time_seconds, reveals)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at;
	`
	saved := *result
	err := r.pool.QueryRow(ctx, q, result.Name, result.Difficulty, result.TimeSeconds, result.Reveals).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert solo result: %v", err)
	}

	return &saved, nil
}

func (r *PostgresRepository) GetSoloResult(ctx context.Context, id int64) (*models.SoloResult, error) {
	q := `
	SELECT id, name, difficulty, time_seconds, reveals, created_at FROM hall_of_fame WHERE id = $1;
	`
	result := &models.SoloResult{}
	err := r.pool.QueryRow(ctx, q, id).Scan(&result.ID, &result.Name, &result.Difficulty, &result.TimeSeconds, &result.Reveals, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan solo result: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListSoloResults(ctx context.Context, limit int) ([]*models.SoloResult, error) {
	q := `
	SELECT id, name, difficulty, time_seconds, reveals, created_at FROM hall_of_fame
	ORDER BY ` + soloResultOrderSQL + `
	LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, q, pgLimit(limit))
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

func (r *PostgresRepository) SaveBattleResult(ctx context.Context, result *models.BattleResult) (*models.BattleResult, error) {
	q := `
	INSERT INTO battles (player1, player2, player1_score, player2_score, winner, difficulty)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at;
	`
	saved := *result
	err := r.pool.QueryRow(ctx, q, result.Player1, result.Player2, result.Player1Score, result.Player2Score, result.Winner, result.Difficulty).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert battle result: %v", err)
	}

	return &saved, nil
}

func (r *PostgresRepository) GetBattleResult(ctx context.Context, id int64) (*models.BattleResult, error) {
	q := `
	SELECT id, player1, player2, player1_score, player2_score, winner, difficulty, created_at FROM battles WHERE id = $1;
	`
	result := &models.BattleResult{}
	err := r.pool.QueryRow(ctx, q, id).Scan(&result.ID, &result.Player1, &result.Player2, &result.Player1Score, &result.Player2Score, &result.Winner, &result.Difficulty, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan battle result: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListBattleResults(ctx context.Context, limit int) ([]*models.BattleResult, error) {
	q := `
	SELECT id, player1, player2, player1_score, player2_score, winner, difficulty, created_at FROM battles
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, q, pgLimit(limit))
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

// pgLimit maps a non-positive limit to NULL, which LIMIT treats as no limit.
func pgLimit(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}
