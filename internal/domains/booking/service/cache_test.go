package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sharedhouse/shared/cache"
	"strconv"
	"strings"
	"sync"
)

// memCache is a map backed RedisCache. When hold is set, Save blocks until
// it is closed. Every completed save is reported on saved.
type memCache struct {
	mu     sync.Mutex
	values map[string][]byte
	ttls   map[string]int
	hold   chan struct{}
	saved  chan string
}

func newMemCache() *memCache {
	return &memCache{
		values: map[string][]byte{},
		ttls:   map[string]int{},
		saved:  make(chan string, 64),
	}
}

func (m *memCache) Save(_ context.Context, key string, value any, duration int) error {
	m.mu.Lock()
	hold := m.hold
	m.mu.Unlock()

	if hold != nil {
		<-hold
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	m.mu.Lock()
	m.values[key] = data
	m.ttls[key] = duration
	m.mu.Unlock()

	m.saved <- key

	return nil
}

func (m *memCache) Get(_ context.Context, key string, value any) error {
	m.mu.Lock()
	data, ok := m.values[key]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", cache.Nil)
	}

	return json.Unmarshal(data, value)
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}

func (m *memCache) Clear(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}

	return nil
}

func (m *memCache) Increment(_ context.Context, key string, _ int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count, _ := strconv.ParseInt(string(m.values[key]), 10, 64)
	count++
	m.values[key] = []byte(strconv.FormatInt(count, 10))

	return count, nil
}

func (m *memCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]

	return ok
}

func (m *memCache) ttl(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ttls[key]
}

func (m *memCache) holdSaves() func() {
	hold := make(chan struct{})

	m.mu.Lock()
	m.hold = hold
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		m.hold = nil
		m.mu.Unlock()

		close(hold)
	}
}
