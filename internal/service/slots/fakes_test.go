package slots

import (
	"context"
	"sync"

	"funny_arcade/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type txManager struct{}

func (txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type slotsConfig struct {
	initialCoins int
	spinCost     int
	historyLimit int
	freeMin      int
	freeMax      int
}

func (c slotsConfig) InitialCoins() int { return c.initialCoins }
func (c slotsConfig) SpinCost() int     { return c.spinCost }
func (c slotsConfig) HistoryLimit() int { return c.historyLimit }
func (c slotsConfig) FreeCoinsMin() int { return c.freeMin }
func (c slotsConfig) FreeCoinsMax() int { return c.freeMax }

func defaultConfig() slotsConfig {
	return slotsConfig{initialCoins: 200, spinCost: 10, historyLimit: 50, freeMin: 30, freeMax: 139}
}

// memRepo хранит историю новыми записями вперёд
type memRepo struct {
	mtx     sync.Mutex
	states  map[int]*model.SlotsState
	history map[int][]model.GameResult
}

func newMemRepo() *memRepo {
	return &memRepo{
		states:  make(map[int]*model.SlotsState),
		history: make(map[int][]model.GameResult),
	}
}

func (r *memRepo) GetState(_ context.Context, userID int, initialCoins int) (*model.SlotsState, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.states[userID]
	if !ok {
		st = &model.SlotsState{Coins: initialCoins}
		r.states[userID] = st
	}
	cp := *st
	return &cp, nil
}

func (r *memRepo) UpdateState(_ context.Context, userID int, coins, totalGames int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.states[userID]
	if !ok {
		return model.ErrNotFound
	}
	st.Coins = coins
	st.TotalGames = totalGames
	return nil
}

func (r *memRepo) AddResult(_ context.Context, userID int, res model.GameResult) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.history[userID] = append([]model.GameResult{res}, r.history[userID]...)
	return nil
}

func (r *memRepo) GetHistory(_ context.Context, userID int, limit int) ([]model.GameResult, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	h := r.history[userID]
	if len(h) > limit {
		h = h[:limit]
	}
	return append([]model.GameResult(nil), h...), nil
}

func (r *memRepo) TrimHistory(_ context.Context, userID int, keep int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if len(r.history[userID]) > keep {
		r.history[userID] = r.history[userID][:keep]
	}
	return nil
}

func (r *memRepo) ClearHistory(_ context.Context, userID int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.history, userID)
	return nil
}

func (r *memRepo) setCoins(userID, coins int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.states[userID]
	if !ok {
		st = &model.SlotsState{}
		r.states[userID] = st
	}
	st.Coins = coins
}

func (r *memRepo) storedHistory(userID int) []model.GameResult {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]model.GameResult(nil), r.history[userID]...)
}
