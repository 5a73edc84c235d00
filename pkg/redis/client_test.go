package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestCatalogKey(t *testing.T) {
	client := &Client{store: newMockCmdable()}

	if got := client.CatalogKey("products:all"); got != "mavazi:catalog:products:all" {
		t.Fatalf("unexpected catalog key %q", got)
	}
	if got := client.CatalogKey("vendor", "abc"); got != "mavazi:catalog:vendor:abc" {
		t.Fatalf("unexpected catalog key %q", got)
	}
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	if err := client.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "v" {
		t.Fatalf("expected v, got %q", got)
	}

	if err := client.Del(ctx, "k"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := client.Get(ctx, "k"); err != Nil {
		t.Fatalf("expected Nil after delete, got %v", err)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	client := &Client{store: newMockCmdable()}

	if _, err := client.Get(context.Background(), "missing"); err != Nil {
		t.Fatalf("expected Nil for missing key, got %v", err)
	}
}

func TestUninitializedClientErrors(t *testing.T) {
	var client *Client
	ctx := context.Background()

	if err := client.Set(ctx, "k", "v", 0); err == nil {
		t.Fatal("expected error from nil client set")
	}
	if _, err := client.Get(ctx, "k"); err == nil {
		t.Fatal("expected error from nil client get")
	}
	if err := client.Ping(ctx); err == nil {
		t.Fatal("expected error from nil client ping")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("nil client close should be a no-op, got %v", err)
	}
}

type mockCmdable struct {
	values map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{values: map[string]string{}}
}

func (m *mockCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case string:
		m.values[key] = v
	case []byte:
		m.values[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := m.values[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}
