package terminal_repo

import (
	"context"
	"strconv"

	"funny_arcade/internal/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "terminal:history:"

type repo struct {
	rdb redis.UniversalClient
}

func NewTerminalHistoryRepository(rdb redis.UniversalClient) repository.TerminalHistoryRepository {
	return &repo{rdb: rdb}
}

func key(userID int) string {
	return keyPrefix + strconv.Itoa(userID)
}

// Push - добавляет команду в конец истории, старые записи сверх limit удаляются
func (r *repo) Push(ctx context.Context, userID int, input string, limit int) error {
	k := key(userID)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, k, input)
		pipe.LTrim(ctx, k, int64(-limit), -1)
		return nil
	})
	return err
}

// List - история от старых к новым
func (r *repo) List(ctx context.Context, userID int) ([]string, error) {
	return r.rdb.LRange(ctx, key(userID), 0, -1).Result()
}
