package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Redis interface {
	GetUniversalClient() redis.UniversalClient
	Reset(ctx context.Context) error
	Close() error

	// Set stores any JSON encodable value.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Get decodes a value stored by Set into outPtr. A missing key returns redis.Nil.
	Get(ctx context.Context, key string, outPtr any) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ErrCacheWrite marks a Wrap call whose callback succeeded but whose result
// could not be stored. The model is populated in that case.
var ErrCacheWrite = errors.New("cache write failed")

// Wrap serves key from the cache and falls back to callback on a miss, storing its result.
func Wrap[T any](
	c context.Context,
	r Redis,
	key string,
	model *T,
	ttl time.Duration,
	callback func() (T, error),
) (err error) {
	if err = r.Get(c, key, model); err != nil {
		res, err := callback()
		if nil != err {
			return err
		}
		*model = res
		if err := r.Set(c, key, res, ttl); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCacheWrite, key, err)
		}
		return nil
	}
	return err
}

func SkipNotFound(err error) error {
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
