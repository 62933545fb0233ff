package redis

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	summary := `[{"product_name":"widget","model_number":"M1","unit":"pcs","current_stock":7}]`
	if err := cache.Set(ctx, "stock:summary", summary, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "stock:summary")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if val != summary {
		t.Fatalf("expected %s, got %s", summary, val)
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "stock:summary", "[]", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "stock:summary"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "stock:summary"); err == nil {
		t.Fatalf("expected error getting deleted key")
	}

	// Invalidating an already-invalidated view stays silent.
	if err := cache.Delete(ctx, "stock:summary"); err != nil {
		t.Fatalf("repeated delete failed: %v", err)
	}
}
