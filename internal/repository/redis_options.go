package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisOptions(rdb redis.Cmdable, prefix string) *RedisOptions {
	return &RedisOptions{rdb: rdb, prefix: prefix}
}

func (r *RedisOptions) optionKey(name string) string {
	return fmt.Sprintf("%soption:%s", r.prefix, name)
}

func (r *RedisOptions) GetOptions(ctx context.Context, names ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(names))
	if len(names) == 0 {
		return out, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = r.optionKey(name)
	}

	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		// MGet yields nil for missing keys.
		if s, ok := v.(string); ok {
			out[names[i]] = []byte(s)
		}
	}
	return out, nil
}

// SetOptions writes all slots in a MULTI/EXEC block.
func (r *RedisOptions) SetOptions(ctx context.Context, values map[string][]byte) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for name, value := range values {
			pipe.Set(ctx, r.optionKey(name), value, 0)
		}
		return nil
	})
	return err
}

var _ OptionStore = (*RedisOptions)(nil)
