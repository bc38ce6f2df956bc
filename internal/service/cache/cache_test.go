package cache

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"
)

func exercise(t *testing.T, c BytesCache, advance func(time.Duration)) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := c.GetBytes(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := c.SetBytes(ctx, "dart:corpcode", []byte(`{"005930":"00126380"}`), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	b, ok, err := c.GetBytes(ctx, "dart:corpcode")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(b, []byte(`{"005930":"00126380"}`)) {
		t.Fatalf("unexpected value %q", b)
	}

	advance(2 * time.Minute)
	if _, ok, _ := c.GetBytes(ctx, "dart:corpcode"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestTTLCache(t *testing.T) {
	c := NewTTLCache()
	now := time.Now()
	c.now = func() time.Time { return now }
	exercise(t, c, func(d time.Duration) { now = now.Add(d) })
}

func TestFileCache(t *testing.T) {
	c := NewFileCache(t.TempDir())
	now := time.Now()
	c.now = func() time.Time { return now }
	exercise(t, c, func(d time.Duration) { now = now.Add(d) })
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	c := NewFileCache(t.TempDir())
	ctx := context.Background()
	if err := c.SetBytes(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := os.WriteFile(c.path("k"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	if _, ok, err := c.GetBytes(ctx, "k"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
}

func TestNopCache(t *testing.T) {
	var c BytesCache = Nop{}
	_ = c.SetBytes(context.Background(), "k", []byte("v"), time.Minute)
	if _, ok, _ := c.GetBytes(context.Background(), "k"); ok {
		t.Fatalf("nop cache must never hit")
	}
}
