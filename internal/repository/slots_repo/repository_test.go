package slots_repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"funny_arcade/internal/model"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestGetStateCreatesAndLocksRow(t *testing.T) {
	mock := newMock(t)
	r := NewSlotsRepository(mock)

	mock.ExpectExec(`INSERT INTO slots_state \(user_id,coins,total_games\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(user_id\) DO NOTHING`).
		WithArgs(7, 200, 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`SELECT coins, total_games FROM slots_state WHERE user_id = \$1 FOR UPDATE`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"coins", "total_games"}).AddRow(200, 0))

	st, err := r.GetState(context.Background(), 7, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Coins != 200 || st.TotalGames != 0 {
		t.Errorf("expected 200/0, got %d/%d", st.Coins, st.TotalGames)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetStateKeepsExistingRow(t *testing.T) {
	mock := newMock(t)
	r := NewSlotsRepository(mock)

	// Строка уже есть: вставка ничего не меняет, читаем сохранённые значения
	mock.ExpectExec(`INSERT INTO slots_state .* ON CONFLICT \(user_id\) DO NOTHING`).
		WithArgs(7, 200, 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery(`SELECT coins, total_games FROM slots_state WHERE user_id = \$1 FOR UPDATE`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"coins", "total_games"}).AddRow(35, 12))

	st, err := r.GetState(context.Background(), 7, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Coins != 35 || st.TotalGames != 12 {
		t.Errorf("expected 35/12, got %d/%d", st.Coins, st.TotalGames)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateStateMissingRow(t *testing.T) {
	mock := newMock(t)
	r := NewSlotsRepository(mock)

	mock.ExpectExec(`UPDATE slots_state SET coins = \$1, total_games = \$2 WHERE user_id = \$3`).
		WithArgs(50, 3, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := r.UpdateState(context.Background(), 7, 50, 3); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTrimHistoryKeepsNewest(t *testing.T) {
	mock := newMock(t)
	r := NewSlotsRepository(mock)

	mock.ExpectExec(`DELETE FROM slots_history WHERE user_id = \$1 AND id NOT IN \(SELECT id FROM slots_history WHERE user_id = \$2 ORDER BY created_at DESC, id DESC LIMIT 3\)`).
		WithArgs(7, 7).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	if err := r.TrimHistory(context.Background(), 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetHistoryNewestFirst(t *testing.T) {
	mock := newMock(t)
	r := NewSlotsRepository(mock)

	newer, older := uuid.New(), uuid.New()
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, created_at, mode, reels, is_jackpot, coins_won, multiplier FROM slots_history WHERE user_id = \$1 ORDER BY created_at DESC, id DESC LIMIT 50`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "mode", "reels", "is_jackpot", "coins_won", "multiplier"}).
			AddRow(newer, at.Add(time.Second), "classic", []byte(`[["🍒","🍒","🍒"]]`), true, 150, decimal.NewFromInt(15)).
			AddRow(older, at, "retro", []byte(`[["🍋"],["🍎"],["🍊"]]`), false, 25, decimal.RequireFromString("2.5")))

	history, err := r.GetHistory(context.Background(), 7, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].ID != newer || history[1].ID != older {
		t.Errorf("expected newest entry first, got %v then %v", history[0].ID, history[1].ID)
	}
	if len(history[1].Reels) != 3 || history[1].Reels[2][0] != "🍊" {
		t.Errorf("unexpected reels %v", history[1].Reels)
	}
	if !history[1].Multiplier.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("expected multiplier 2.5, got %s", history[1].Multiplier)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestClearHistory(t *testing.T) {
	mock := newMock(t)
	r := NewSlotsRepository(mock)

	mock.ExpectExec(`DELETE FROM slots_history WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	if err := r.ClearHistory(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
