package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tubone24/eiga-miyou/internal/model"
)

func okResult(n int) model.ScrapeResult {
	sts := make([]model.Showtime, 0, n)
	for i := 0; i < n; i++ {
		sts = append(sts, model.Showtime{MovieTitle: "Example Film", StartTime: fmt.Sprintf("1%d:00", i)})
	}
	return model.ScrapeResult{Success: true, Showtimes: sts, ScrapedAt: time.Now().UTC()}
}

func TestKey(t *testing.T) {
	if got := Key("toho", "076", "2025-06-01"); got != "toho:076:2025-06-01" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(0, 0)
	want := okResult(2)
	if err := c.Set(ctx, "toho:076:2025-06-01", want); err != nil {
		t.Fatal(err)
	}
	got, ok := c.Get(ctx, "toho:076:2025-06-01")
	if !ok {
		t.Fatal("expected hit")
	}
	if !got.Success || len(got.Showtimes) != 2 {
		t.Fatalf("round trip mangled result: %+v", got)
	}
}

func TestMissOnUnknownKey(t *testing.T) {
	c := NewInMemory(0, 0)
	if _, ok := c.Get(context.Background(), "nope"); ok {
		t.Fatal("expected miss")
	}
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(10*time.Minute, 0)
	now := time.Now()
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "k", okResult(1)); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(ctx, "k"); !ok {
		t.Fatal("expected hit before TTL")
	}

	now = now.Add(11 * time.Minute)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss after TTL")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not removed, len=%d", c.Len())
	}
}

func TestCapacityBound(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(10*time.Minute, 5)
	for i := 0; i < 12; i++ {
		key := Key("toho", fmt.Sprintf("%03d", i), "2025-06-01")
		if err := c.Set(ctx, key, okResult(1)); err != nil {
			t.Fatal(err)
		}
	}
	if c.Len() > 5 {
		t.Fatalf("capacity exceeded: %d entries", c.Len())
	}
}

func TestEvictionIsOldestFirst(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(10*time.Minute, 2)
	_ = c.Set(ctx, "a", okResult(1))
	_ = c.Set(ctx, "b", okResult(1))
	_ = c.Set(ctx, "c", okResult(1)) // evicts a

	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	for _, k := range []string{"b", "c"} {
		if _, ok := c.Get(ctx, k); !ok {
			t.Fatalf("entry %q missing", k)
		}
	}
}

func TestSetAtCapacitySweepsExpiredFirst(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(10*time.Minute, 2)
	now := time.Now()
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "old", okResult(1))
	now = now.Add(11 * time.Minute)
	_ = c.Set(ctx, "b", okResult(1))
	_ = c.Set(ctx, "c", okResult(1)) // capacity reached, "old" is expired

	if _, ok := c.Get(ctx, "b"); !ok {
		t.Fatal("live entry evicted although an expired one was available")
	}
	if _, ok := c.Get(ctx, "c"); !ok {
		t.Fatal("new entry missing")
	}
}

func TestFailedResultsAreCached(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(0, 0)
	_ = c.Set(ctx, "k", model.Failure("upstream down"))
	got, ok := c.Get(ctx, "k")
	if !ok {
		t.Fatal("failed results must be cached too")
	}
	if got.Success || got.Error == "" {
		t.Fatalf("failure not preserved: %+v", got)
	}
}

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(10*time.Minute, 0)
	now := time.Now()
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "a", okResult(1))
	_ = c.Set(ctx, "b", okResult(1))
	now = now.Add(11 * time.Minute)
	_ = c.Set(ctx, "fresh", okResult(1))

	c.SweepExpired(ctx)
	if c.Len() != 1 {
		t.Fatalf("expected only the fresh entry to survive, len=%d", c.Len())
	}
}
