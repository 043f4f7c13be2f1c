package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "reviewboard/internal/adapters/redis"
	"reviewboard/internal/app"
	"reviewboard/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	rs    []domain.Review
	err   error
	calls int
}

func (f *fakeSource) Name() string { return "fake" }
func (f *fakeSource) List(ctx context.Context) ([]domain.Review, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Review, len(f.rs))
	copy(out, f.rs)
	return out, nil
}

type fakeCache struct {
	store map[string]any
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*[]domain.Review); ok {
		*d = v.([]domain.Review)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.sets++
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

// ---- tests ----

func TestListReviews_NoCache(t *testing.T) {
	src := &fakeSource{rs: []domain.Review{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}}
	q := app.NewQueryService(src, nil, time.Minute)

	for i := 0; i < 2; i++ {
		out, err := q.ListReviews(context.Background())
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if len(out) != 2 || out[0].ID != "1" || out[1].Title != "b" {
			t.Fatalf("unexpected reviews: %+v", out)
		}
	}
	if src.calls != 2 {
		t.Fatalf("expected 2 source reads without cache, got %d", src.calls)
	}
}

func TestListReviews_CacheMissThenHit(t *testing.T) {
	src := &fakeSource{rs: []domain.Review{{ID: "1", Title: "Ana"}}}
	cache := &fakeCache{}
	q := app.NewQueryService(src, cache, 10*time.Minute)

	out, err := q.ListReviews(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].Title != "Ana" {
		t.Fatalf("unexpected reviews: %+v", out)
	}

	// mutating the returned slice must not leak into the cached value
	out[0].Title = "Changed"
	src.rs[0].Title = "SHOULD NOT SEE THIS"

	out2, _ := q.ListReviews(context.Background())
	if out2[0].Title != "Ana" {
		t.Fatalf("expected cached title Ana, got %s", out2[0].Title)
	}
	if src.calls != 1 || cache.sets != 1 {
		t.Fatalf("expected one source read and one set, got %d/%d", src.calls, cache.sets)
	}
}

func TestListReviews_SourceError(t *testing.T) {
	boom := errors.New("boom")
	q := app.NewQueryService(&fakeSource{err: boom}, &fakeCache{}, time.Minute)

	if _, err := q.ListReviews(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestListReviews_RedisBadValueIsRefilled(t *testing.T) {
	for _, bad := range []string{"not-json", "null", `[{"id":1}]`} {
		t.Run(bad, func(t *testing.T) {
			mr := miniredis.RunT(t)
			cache := redisad.New(mr.Addr(), "", 0)
			t.Cleanup(func() { _ = cache.Close() })

			src := &fakeSource{rs: []domain.Review{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}}
			q := app.NewQueryService(src, cache, time.Minute)

			if err := mr.Set("reviews:fake", bad); err != nil {
				t.Fatalf("seed: %v", err)
			}

			out, err := q.ListReviews(context.Background())
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if len(out) != 2 || out[0].Title != "a" || out[1].Title != "b" {
				t.Fatalf("expected full list from source, got %+v", out)
			}

			// the key is rewritten, so the next read is a clean hit
			if got, _ := mr.Get("reviews:fake"); got != `[{"id":"1","title":"a"},{"id":"2","title":"b"}]` {
				t.Fatalf("cache not refilled: %s", got)
			}
			out, _ = q.ListReviews(context.Background())
			if len(out) != 2 || src.calls != 1 {
				t.Fatalf("expected cached hit, got %+v after %d source reads", out, src.calls)
			}
		})
	}
}
