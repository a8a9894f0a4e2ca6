package locker

import (
	"time"

	redislock "github.com/go-co-op/gocron-redis-lock/v2"
	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"
)

type Locker gocron.Locker

// NewLocker returns a distributed locker so that only one worker replica runs a given job tick.
func NewLocker(rd redis.UniversalClient, expiry time.Duration) (Locker, error) {
	if expiry <= 0 {
		expiry = time.Minute
	}
	return redislock.NewRedisLockerAlways(rd, redislock.WithExpiry(expiry), redislock.WithTries(1))
}
