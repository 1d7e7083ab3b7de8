package reaction_repo

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"funny_arcade/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func newRepo(t *testing.T, log zerolog.Logger) (*repo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewReactionRepository(rdb, log).(*repo), mr
}

func TestGetScoresMalformedValues(t *testing.T) {
	var buf bytes.Buffer
	r, mr := newRepo(t, zerolog.New(&buf))

	mr.HSet(key(5), fieldBest, "abc")
	mr.HSet(key(5), fieldWorst, "-5")

	scores, err := r.GetScores(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores.Best != 0 || scores.Worst != 0 {
		t.Errorf("expected 0/0, got %d/%d", scores.Best, scores.Worst)
	}
	if n := strings.Count(buf.String(), "malformed reaction score"); n != 2 {
		t.Errorf("expected 2 warnings, got %d: %s", n, buf.String())
	}
}

func TestGetScoresMissingKey(t *testing.T) {
	r, _ := newRepo(t, zerolog.Nop())

	scores, err := r.GetScores(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores != (model.ReactionScores{}) {
		t.Errorf("expected empty scores, got %+v", scores)
	}
}

func TestUpdateScores(t *testing.T) {
	r, mr := newRepo(t, zerolog.Nop())
	ctx := context.Background()

	got, err := r.UpdateScores(ctx, 1, func(cur model.ReactionScores) model.ReactionScores {
		cur.Best, cur.Worst = 210, 480
		return cur
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Best != 210 || got.Worst != 480 {
		t.Errorf("expected 210/480, got %d/%d", got.Best, got.Worst)
	}
	if v := mr.HGet(key(1), fieldBest); v != "210" {
		t.Errorf("expected stored best 210, got %q", v)
	}

	// Нулевое значение удаляет поле
	if _, err = r.UpdateScores(ctx, 1, func(cur model.ReactionScores) model.ReactionScores {
		cur.Worst = 0
		return cur
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.HGet(key(1), fieldWorst) != "" {
		t.Errorf("expected worst field to be removed")
	}

	if err := r.DeleteScores(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.Exists(key(1)) {
		t.Errorf("expected key to be deleted")
	}
}

func TestUpdateScoresConcurrent(t *testing.T) {
	r, _ := newRepo(t, zerolog.Nop())
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(ms int) {
			defer wg.Done()
			_, err := r.UpdateScores(ctx, 9, func(cur model.ReactionScores) model.ReactionScores {
				if cur.Best == 0 || ms < cur.Best {
					cur.Best = ms
				}
				if ms > cur.Worst {
					cur.Worst = ms
				}
				return cur
			})
			errs <- err
		}(i * 10)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	scores, err := r.GetScores(ctx, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores.Best != 10 || scores.Worst != workers*10 {
		t.Errorf("expected 10/%d, got %d/%d", workers*10, scores.Best, scores.Worst)
	}
}
