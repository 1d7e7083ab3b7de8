package terminal_repo

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRepo(t *testing.T) *repo {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTerminalHistoryRepository(rdb).(*repo)
}

func TestPushDropsOldest(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	for i := 1; i <= 51; i++ {
		if err := r.Push(ctx, 3, "cmd"+strconv.Itoa(i), 50); err != nil {
			t.Fatalf("push %d: unexpected error: %v", i, err)
		}
	}

	history, err := r.List(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 50 {
		t.Fatalf("expected 50 entries, got %d", len(history))
	}
	if history[0] != "cmd2" {
		t.Errorf("expected oldest kept entry cmd2, got %q", history[0])
	}
	if history[49] != "cmd51" {
		t.Errorf("expected newest entry cmd51, got %q", history[49])
	}
}

func TestListSeparatesUsers(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	if err := r.Push(ctx, 1, "help", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, err := r.List(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history, got %v", history)
	}
}
