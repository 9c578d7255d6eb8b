package search

import (
	"context"
	"sync"

	"prixmalin-api/core/domain"
	coreerrors "prixmalin-api/core/errors"
)

// mockCache is an in-memory ResultCache for coordinator tests.
type mockCache struct {
	mu      sync.Mutex
	entries map[string][]domain.Product
	getErr  error
	setErr  error
	sets    int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string][]domain.Product)}
}

func (c *mockCache) key(query, source string) string {
	return query + "|" + source
}

func (c *mockCache) Get(_ context.Context, query, source string) ([]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	products, ok := c.entries[c.key(query, source)]
	if !ok {
		return nil, coreerrors.ErrCacheMiss
	}
	return products, nil
}

func (c *mockCache) Set(_ context.Context, query, source string, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[c.key(query, source)] = products
	return nil
}

func (c *mockCache) Close() error { return nil }

// mockSource is a configurable Source for coordinator tests.
type mockSource struct {
	key       string
	name      string
	searchFn  func(ctx context.Context, query string) ([]domain.Product, error)
	mu        sync.Mutex
	callCount int
}

func (s *mockSource) Key() string       { return s.key }
func (s *mockSource) StoreName() string { return s.name }

func (s *mockSource) Search(ctx context.Context, query string) ([]domain.Product, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()
	return s.searchFn(ctx, query)
}

func (s *mockSource) ConfigureLocation(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func (s *mockSource) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// mockLogger records log calls without output.
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *mockLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *mockLogger) Debug(msg string, _ map[string]interface{}) { l.record(msg) }
func (l *mockLogger) Info(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *mockLogger) Warn(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *mockLogger) Error(msg string, _ map[string]interface{}) { l.record(msg) }

func floatPtr(v float64) *float64 { return &v }

func staticSource(key, name string, products []domain.Product) *mockSource {
	return &mockSource{
		key:  key,
		name: name,
		searchFn: func(_ context.Context, _ string) ([]domain.Product, error) {
			return products, nil
		},
	}
}

func blockingSource(key, name string) *mockSource {
	return &mockSource{
		key:  key,
		name: name,
		searchFn: func(ctx context.Context, _ string) ([]domain.Product, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
}
