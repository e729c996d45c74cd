package session

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryManager keeps session values in process memory. Values of a session
// expire together once the session has not been written for ttl.
type MemoryManager struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewMemoryManager(ttl time.Duration) *MemoryManager {
	return &MemoryManager{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (m *MemoryManager) Open(sessionID string) Store {
	return &memoryStore{manager: m, sessionID: sessionID}
}

type memoryStore struct {
	manager   *MemoryManager
	sessionID string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	if len(s.sessionID) == 0 {
		return "", false, ErrEmptySessionID
	}

	s.manager.mu.Lock()
	defer s.manager.mu.Unlock()

	values, found := s.manager.cache.Get(s.sessionID)

	if !found {
		return "", false, nil
	}

	value, ok := values.(map[string]string)[key]
	return value, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	if len(s.sessionID) == 0 {
		return ErrEmptySessionID
	}

	s.manager.mu.Lock()
	defer s.manager.mu.Unlock()

	updated := map[string]string{}
	if values, found := s.manager.cache.Get(s.sessionID); found {
		updated = maps.Clone(values.(map[string]string))
	}
	updated[key] = value

	s.manager.cache.Set(s.sessionID, updated, cache.DefaultExpiration)

	return nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	if len(s.sessionID) == 0 {
		return ErrEmptySessionID
	}

	s.manager.mu.Lock()
	defer s.manager.mu.Unlock()

	s.manager.cache.Delete(s.sessionID)

	return nil
}
