package session

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"skillswap/internal/cache"

	"github.com/redis/go-redis/v9"
)

// Store keeps the server-side half of a session keyed by jti.
type Store interface {
	Save(ctx context.Context, id string, userID uint, ttl time.Duration) error
	Lookup(ctx context.Context, id string) (uint, bool, error)
	Delete(ctx context.Context, id string) error
}

// NewStore returns a Redis-backed store, or an in-process one when rdb is nil.
func NewStore(rdb *redis.Client) Store {
	if rdb == nil {
		return NewMemoryStore()
	}
	return &RedisStore{rdb: rdb}
}

type RedisStore struct {
	rdb *redis.Client
}

func (s *RedisStore) Save(ctx context.Context, id string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, cache.SessionKey(id), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisStore) Lookup(ctx context.Context, id string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, cache.SessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false, nil
	}
	return uint(userID), true, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, cache.SessionKey(id)).Err()
}

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is the single-process fallback used when Redis is unavailable.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, id string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.entries[id] = memoryEntry{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, id string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return 0, false, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return 0, false, nil
	}
	return e.userID, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// sweep drops expired entries; callers hold mu.
func (s *MemoryStore) sweep() {
	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
