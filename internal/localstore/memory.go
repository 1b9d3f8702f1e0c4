package localstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used in tests and as a degraded
// fallback when Redis is unreachable. Notifications reach every
// subscriber, including the writer's own context; reconciliation on
// the reading side is idempotent so the extra wakeup is harmless.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
	subs []chan string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.notify(key)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	s.notify(key)
	return nil
}

func (s *MemoryStore) Notifications(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 16)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

// notify runs under s.mu so a subscriber channel cannot be closed
// mid-send. Sends never block; a full channel drops the wakeup and the
// subscriber's poll loop catches up.
func (s *MemoryStore) notify(key string) {
	for _, sub := range s.subs {
		select {
		case sub <- key:
		default:
		}
	}
}
