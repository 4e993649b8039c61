package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cbodonnell/pairs/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepositories(t *testing.T) map[string]Repository {
	ctx := context.Background()

	sqliteRepository, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "pairs.db"), "../../migrations/sqlite")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteRepository.Close(ctx) })

	return map[string]Repository{
		"memory": NewInMemoryRepository(nil),
		"sqlite": sqliteRepository,
	}
}

func TestRepository_ListCards(t *testing.T) {
	for name, repository := range testRepositories(t) {
		t.Run(name, func(t *testing.T) {
			cards, err := repository.ListCards(context.Background())
			require.NoError(t, err)
			assert.Equal(t, DefaultCards(), cards)
		})
	}
}

func TestRepository_SoloResults(t *testing.T) {
	entries := []*models.SoloResult{
		{Name: "a", Difficulty: "easy", TimeSeconds: 10, Reveals: 20},
		{Name: "b", Difficulty: "ultrahard", TimeSeconds: 60, Reveals: 30},
		{Name: "c", Difficulty: "hard", TimeSeconds: 30, Reveals: 25},
		{Name: "d", Difficulty: "hard", TimeSeconds: 30, Reveals: 20},
		{Name: "e", Difficulty: "hard", TimeSeconds: 20, Reveals: 40},
		{Name: "f", Difficulty: "medium", TimeSeconds: 5, Reveals: 10},
	}

	for name, repository := range testRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			var ids []int64
			for _, entry := range entries {
				saved, err := repository.SaveSoloResult(ctx, entry)
				require.NoError(t, err)
				assert.NotZero(t, saved.ID)
				assert.False(t, saved.CreatedAt.IsZero())
				assert.Equal(t, entry.Name, saved.Name)
				ids = append(ids, saved.ID)
			}

			got, err := repository.GetSoloResult(ctx, ids[2])
			require.NoError(t, err)
			assert.Equal(t, "c", got.Name)
			assert.Equal(t, 25, got.Reveals)

			_, err = repository.GetSoloResult(ctx, 9999)
			assert.True(t, IsNotFound(err))

			results, err := repository.ListSoloResults(ctx, SoloResultsLimit)
			require.NoError(t, err)
			var names []string
			for _, result := range results {
				names = append(names, result.Name)
			}
			assert.Equal(t, []string{"b", "e", "d", "c", "f", "a"}, names)

			results, err = repository.ListSoloResults(ctx, 2)
			require.NoError(t, err)
			assert.Len(t, results, 2)
		})
	}
}

func TestRepository_SoloResults_limit(t *testing.T) {
	for name, repository := range testRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 0; i < SoloResultsLimit+2; i++ {
				_, err := repository.SaveSoloResult(ctx, &models.SoloResult{Name: fmt.Sprintf("p%d", i), Difficulty: "easy", TimeSeconds: 100 - i, Reveals: 10})
				require.NoError(t, err)
			}

			results, err := repository.ListSoloResults(ctx, SoloResultsLimit)
			require.NoError(t, err)
			require.Len(t, results, SoloResultsLimit)
			assert.Equal(t, "p11", results[0].Name)
			assert.Equal(t, 89, results[0].TimeSeconds)
		})
	}
}

func TestRepository_BattleResults(t *testing.T) {
	for name, repository := range testRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 1; i <= 3; i++ {
				saved, err := repository.SaveBattleResult(ctx, &models.BattleResult{
					Player1:      "ana",
					Player2:      "ben",
					Player1Score: i,
					Player2Score: 3 - i,
					Winner:       "ana",
					Difficulty:   "easy",
				})
				require.NoError(t, err)
				assert.NotZero(t, saved.ID)
			}

			results, err := repository.ListBattleResults(ctx, BattleResultsLimit)
			require.NoError(t, err)
			require.Len(t, results, 3)
			assert.Equal(t, 3, results[0].Player1Score)
			assert.Equal(t, 2, results[1].Player1Score)
			assert.Equal(t, 1, results[2].Player1Score)

			results, err = repository.ListBattleResults(ctx, 2)
			require.NoError(t, err)
			assert.Len(t, results, 2)

			got, err := repository.GetBattleResult(ctx, results[0].ID)
			require.NoError(t, err)
			assert.Equal(t, "ben", got.Player2)

			_, err = repository.GetBattleResult(ctx, 9999)
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestNewSQLiteRepository_migrationsAreRepeatable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pairs.db")

	first, err := NewSQLiteRepository(ctx, path, "../../migrations/sqlite")
	require.NoError(t, err)
	_, err = first.SaveSoloResult(ctx, &models.SoloResult{Name: "a", Difficulty: "easy", TimeSeconds: 1, Reveals: 2})
	require.NoError(t, err)
	require.NoError(t, first.Close(ctx))

	second, err := NewSQLiteRepository(ctx, path, "../../migrations/sqlite")
	require.NoError(t, err)
	defer second.Close(ctx)

	cards, err := second.ListCards(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 6)
	results, err := second.ListSoloResults(ctx, SoloResultsLimit)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestNewSQLiteRepository_missingMigrations(t *testing.T) {
	_, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "pairs.db"), "does-not-exist")
	assert.Error(t, err)
}

func TestSortSoloResults_unknownDifficultyLast(t *testing.T) {
	results := []*models.SoloResult{
		{ID: 1, Name: "x", Difficulty: "nightmare", TimeSeconds: 1},
		{ID: 2, Name: "y", Difficulty: "easy", TimeSeconds: 50},
	}
	SortSoloResults(results)
	assert.Equal(t, "y", results[0].Name)
}

func TestNewRepositoryFromURL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name     string
		connStr  string
		wantType string
		wantErr  bool
	}{
		{name: "memory", connStr: "memory://", wantType: "*repositories.InMemoryRepository"},
		{name: "sqlite absolute path", connStr: "sqlite://" + filepath.Join(dir, "abs.db"), wantType: "*repositories.SQLiteRepository"},
		{name: "sqlite without path", connStr: "sqlite://", wantErr: true},
		{name: "unknown scheme", connStr: "mysql://localhost/pairs", wantErr: true},
		{name: "unparseable", connStr: "://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository, err := NewRepositoryFromURL(ctx, tt.connStr, "../../migrations/sqlite")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer repository.Close(ctx)
			assert.Equal(t, tt.wantType, fmt.Sprintf("%T", repository))
		})
	}
}
