package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "reviewboard/internal/adapters/redis"
	"reviewboard/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_GetMissSetHit(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var out []domain.Review
	ok, err := c.Get(ctx, "reviews:backend", &out)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	in := []domain.Review{{ID: "1", Title: "Game Review: Need for Speed"}}
	if err := c.Set(ctx, "reviews:backend", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	ok, err = c.Get(ctx, "reviews:backend", &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("unexpected cached value: %+v", out)
	}
}

func TestCache_TTLAndDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []domain.Review{}, 30*time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("k"); ttl != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %s", ttl)
	}

	mr.FastForward(31 * time.Second)
	var out []domain.Review
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatalf("expected expiry")
	}

	_ = c.Set(ctx, "k", []domain.Review{}, 30*time.Second)
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if mr.Exists("k") {
		t.Fatalf("expected key deleted")
	}
}

func TestCache_SubSecondTTL(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []domain.Review{}, 500*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("k"); ttl <= 0 || ttl > 500*time.Millisecond {
		t.Fatalf("expected a sub-second expiry, got %s", ttl)
	}

	mr.FastForward(time.Second)
	if mr.Exists("k") {
		t.Fatalf("expected key to expire")
	}
}

func TestCache_UndecodableValueIsMiss(t *testing.T) {
	c, mr := newCache(t)

	if err := mr.Set("reviews:backend", "not-json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var out []domain.Review
	ok, err := c.Get(context.Background(), "reviews:backend", &out)
	if ok || err == nil {
		t.Fatalf("expected miss with decode error, got ok=%v err=%v", ok, err)
	}
}
