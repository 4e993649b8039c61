package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/cbodonnell/pairs/pkg/repositories/models"
)

// InMemoryRepository keeps everything in process memory. It is safe for
// concurrent use and loses its contents on exit.
type InMemoryRepository struct {
	lock    sync.RWMutex
	cards   []*models.Card
	solo    []*models.SoloResult
	battles []*models.BattleResult
	nextID  int64
	now     func() time.Time
}

// NewInMemoryRepository creates a repository seeded with cards.
// A nil cards slice seeds DefaultCards.
func NewInMemoryRepository(cards []*models.Card) *InMemoryRepository {
	if cards == nil {
		cards = DefaultCards()
	}
	return &InMemoryRepository{
		cards:  cards,
		nextID: 1,
		now:    time.Now,
	}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) ListCards(ctx context.Context) ([]*models.Card, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	cards := make([]*models.Card, 0, len(r.cards))
	for _, c := range r.cards {
		copy := *c
		cards = append(cards, &copy)
	}
	return cards, nil
}

func (r *InMemoryRepository) SaveSoloResult(ctx context.Context, result *models.SoloResult) (*models.SoloResult, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	saved := *result
	saved.ID = r.nextID
	saved.CreatedAt = r.now().UTC()
	r.nextID++
	r.solo = append(r.solo, &saved)

	copy := saved
	return &copy, nil
}

func (r *InMemoryRepository) GetSoloResult(ctx context.Context, id int64) (*models.SoloResult, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, result := range r.solo {
		if result.ID == id {
			copy := *result
			return &copy, nil
		}
	}
	return nil, &ErrNotFound{}
}

func (r *InMemoryRepository) ListSoloResults(ctx context.Context, limit int) ([]*models.SoloResult, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	results := make([]*models.SoloResult, 0, len(r.solo))
	for _, result := range r.solo {
		copy := *result
		results = append(results, &copy)
	}
	SortSoloResults(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (r *InMemoryRepository) SaveBattleResult(ctx context.Context, result *models.BattleResult) (*models.BattleResult, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	saved := *result
	saved.ID = r.nextID
	saved.CreatedAt = r.now().UTC()
	r.nextID++
	r.battles = append(r.battles, &saved)

	copy := saved
	return &copy, nil
}

func (r *InMemoryRepository) GetBattleResult(ctx context.Context, id int64) (*models.BattleResult, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, result := range r.battles {
		if result.ID == id {
			copy := *result
			return &copy, nil
		}
	}
	return nil, &ErrNotFound{}
}

func (r *InMemoryRepository) ListBattleResults(ctx context.Context, limit int) ([]*models.BattleResult, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	results := make([]*models.BattleResult, 0, len(r.battles))
	for i := len(r.battles) - 1; i >= 0; i-- {
		if limit > 0 && len(results) == limit {
			break
		}
		copy := *r.battles[i]
		results = append(results, &copy)
	}
	return results, nil
}
