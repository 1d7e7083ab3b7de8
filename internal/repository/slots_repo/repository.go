package slots_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"funny_arcade/internal/model"
	"funny_arcade/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	stateTable    = "slots_state"
	colUserID     = "user_id"
	colCoins      = "coins"
	colTotalGames = "total_games"

	historyTable  = "slots_history"
	colID         = "id"
	colCreatedAt  = "created_at"
	colMode       = "mode"
	colReels      = "reels"
	colIsJackpot  = "is_jackpot"
	colCoinsWon   = "coins_won"
	colMultiplier = "multiplier"
)

type repo struct {
	dbc    trmpgx.Tr
	getter *trmpgx.CtxGetter
}

// NewSlotsRepository принимает *pgxpool.Pool или любую реализацию trmpgx.Tr
func NewSlotsRepository(dbc trmpgx.Tr) repository.SlotsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetState - монеты и число игр пользователя.
// Если записи нет, создаётся новая с начальными монетами
func (r *repo) GetState(ctx context.Context, userID int, initialCoins int) (*model.SlotsState, error) {
	db := r.getter.DefaultTrOrDB(ctx, r.dbc)

	// Создаём запись, если её ещё нет
	insert := sq.Insert(stateTable).
		Columns(colUserID, colCoins, colTotalGames).
		Values(userID, initialCoins, 0).
		Suffix("ON CONFLICT (" + colUserID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(ctx, sqlStr, args...); err != nil {
		return nil, err
	}

	// Читаем с блокировкой строки до конца транзакции
	query := sq.Select(colCoins, colTotalGames).
		From(stateTable).
		Where(sq.Eq{colUserID: userID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = query.ToSql()
	if err != nil {
		return nil, err
	}

	var state model.SlotsState
	err = db.QueryRow(ctx, sqlStr, args...).Scan(&state.Coins, &state.TotalGames)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	return &state, nil
}

// UpdateState - обновление монет и числа игр
func (r *repo) UpdateState(ctx context.Context, userID int, coins, totalGames int) error {
	query := sq.Update(stateTable).
		Set(colCoins, coins).
		Set(colTotalGames, totalGames).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// AddResult - запись результата спина в историю
func (r *repo) AddResult(ctx context.Context, userID int, res model.GameResult) error {
	reels, err := json.Marshal(res.Reels)
	if err != nil {
		return fmt.Errorf("marshal reels: %w", err)
	}

	query := sq.Insert(historyTable).
		Columns(colID, colUserID, colCreatedAt, colMode, colReels, colIsJackpot, colCoinsWon, colMultiplier).
		Values(res.ID, userID, res.Timestamp, string(res.Mode), reels, res.IsJackpot, res.CoinsWon, res.Multiplier).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetHistory - последние limit записей, новые первыми
func (r *repo) GetHistory(ctx context.Context, userID int, limit int) ([]model.GameResult, error) {
	query := sq.Select(colID, colCreatedAt, colMode, colReels, colIsJackpot, colCoinsWon, colMultiplier).
		From(historyTable).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]model.GameResult, 0, limit)
	for rows.Next() {
		var (
			id         uuid.UUID
			createdAt  time.Time
			mode       string
			reels      []byte
			isJackpot  bool
			coinsWon   int
			multiplier decimal.Decimal
		)
		if err := rows.Scan(&id, &createdAt, &mode, &reels, &isJackpot, &coinsWon, &multiplier); err != nil {
			return nil, err
		}

		var grid model.ReelGrid
		if err := json.Unmarshal(reels, &grid); err != nil {
			return nil, fmt.Errorf("unmarshal reels of %s: %w", id, err)
		}

		history = append(history, model.GameResult{
			ID:         id,
			Timestamp:  createdAt,
			Mode:       model.GameMode(mode),
			Reels:      grid,
			IsJackpot:  isJackpot,
			CoinsWon:   coinsWon,
			Multiplier: multiplier,
		})
	}

	return history, rows.Err()
}

// TrimHistory - оставляет keep последних записей, старые удаляются
func (r *repo) TrimHistory(ctx context.Context, userID int, keep int) error {
	newest := sq.Select(colID).
		From(historyTable).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(keep))

	newestSQL, newestArgs, err := newest.ToSql()
	if err != nil {
		return err
	}

	query := sq.Delete(historyTable).
		Where(sq.Eq{colUserID: userID}).
		Where(sq.Expr(colID+" NOT IN ("+newestSQL+")", newestArgs...)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ClearHistory - удаление всей истории пользователя
func (r *repo) ClearHistory(ctx context.Context, userID int) error {
	query := sq.Delete(historyTable).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
