package redis

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	goRedis "github.com/redis/go-redis/v9"
)

type entry struct {
	value []byte
	expAt *time.Time
}

// InMemoryRedis implements redis.Redis on a map for tests that do not need a server.
type InMemoryRedis struct {
	mu    sync.Mutex
	store map[string]entry
}

func NewInMemoryRedis() *InMemoryRedis {
	return &InMemoryRedis{store: make(map[string]entry)}
}

func (m *InMemoryRedis) GetUniversalClient() goRedis.UniversalClient { return nil }

func (m *InMemoryRedis) Reset(ctx context.Context) error {
	m.mu.Lock()
	m.store = make(map[string]entry)
	m.mu.Unlock()
	return nil
}

func (m *InMemoryRedis) Close() error { return nil }

func (m *InMemoryRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var exp *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		exp = &t
	}
	m.mu.Lock()
	m.store[key] = entry{value: b, expAt: exp}
	m.mu.Unlock()
	return nil
}

func (m *InMemoryRedis) Get(ctx context.Context, key string, outPtr any) error {
	m.mu.Lock()
	e, ok := m.store[key]
	if ok && e.expAt != nil && time.Now().After(*e.expAt) {
		delete(m.store, key)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return goRedis.Nil
	}
	return json.Unmarshal(e.value, outPtr)
}

func (m *InMemoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.store, key)
	m.mu.Unlock()
	return nil
}

func (m *InMemoryRedis) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.store[key]
	if ok && e.expAt != nil && time.Now().After(*e.expAt) {
		return false, nil
	}
	return ok, nil
}
