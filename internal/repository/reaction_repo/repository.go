package reaction_repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"funny_arcade/internal/model"
	"funny_arcade/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	keyPrefix  = "reaction:"
	fieldBest  = "best"
	fieldWorst = "worst"

	maxUpdateRetries = 100
)

var ErrTooManyRetries = errors.New("too many concurrent updates")

type repo struct {
	rdb redis.UniversalClient
	log zerolog.Logger
}

func NewReactionRepository(rdb redis.UniversalClient, log zerolog.Logger) repository.ReactionRepository {
	return &repo{
		rdb: rdb,
		log: log,
	}
}

func key(userID int) string {
	return keyPrefix + strconv.Itoa(userID)
}

// GetScores - лучший и худший результат.
// Отсутствующие или битые значения считаются как "нет результата"
func (r *repo) GetScores(ctx context.Context, userID int) (model.ReactionScores, error) {
	return r.read(ctx, r.rdb, userID)
}

func (r *repo) read(ctx context.Context, c redis.Cmdable, userID int) (model.ReactionScores, error) {
	vals, err := c.HMGet(ctx, key(userID), fieldBest, fieldWorst).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return model.ReactionScores{}, err
	}

	return model.ReactionScores{
		Best:  r.parse(userID, fieldBest, vals, 0),
		Worst: r.parse(userID, fieldWorst, vals, 1),
	}, nil
}

func (r *repo) parse(userID int, field string, vals []interface{}, i int) int {
	if i >= len(vals) || vals[i] == nil {
		return 0
	}
	s, ok := vals[i].(string)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		r.log.Warn().Int("user_id", userID).Str("field", field).Str("value", s).Msg("malformed reaction score, using default")
		return 0
	}
	return n
}

// UpdateScores - чтение, изменение и запись под WATCH.
// Если ключ изменили параллельно, update вызывается заново
func (r *repo) UpdateScores(ctx context.Context, userID int, update func(model.ReactionScores) model.ReactionScores) (model.ReactionScores, error) {
	k := key(userID)
	var result model.ReactionScores

	txf := func(tx *redis.Tx) error {
		cur, err := r.read(ctx, tx, userID)
		if err != nil {
			return err
		}
		next := update(cur)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for field, v := range map[string]int{fieldBest: next.Best, fieldWorst: next.Worst} {
				if v > 0 {
					pipe.HSet(ctx, k, field, v)
				} else {
					pipe.HDel(ctx, k, field)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		result = next
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.rdb.Watch(ctx, txf, k)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return model.ReactionScores{}, err
		}
	}
	return model.ReactionScores{}, fmt.Errorf("update %s: %w", k, ErrTooManyRetries)
}

func (r *repo) DeleteScores(ctx context.Context, userID int) error {
	return r.rdb.Del(ctx, key(userID)).Err()
}
