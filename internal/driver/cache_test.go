package driver

import (
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
)

func newTestCache(t *testing.T) *DiskCache {
	t.Helper()
	return &DiskCache{dir: t.TempDir()}
}

func TestDiskCachePutGetRoundTrip(t *testing.T) {
	c := newTestCache(t)
	key := [32]byte{1, 2, 3}
	want := FileResult{
		Path: "a.ts",
		Diagnostics: []*diag.Diagnostic{
			{Code: 2304, Severity: diag.SevError, Message: "Cannot find name.", Primary: source.Span{Start: 10, End: 15}},
		},
	}

	if err := c.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected a cache hit after Put")
	}
	if got.Path != want.Path || len(got.Diagnostics) != 1 {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
	if got.Diagnostics[0].Code != 2304 || got.Diagnostics[0].Message != "Cannot find name." {
		t.Errorf("diagnostic fields did not survive the round trip: %+v", got.Diagnostics[0])
	}
}

func TestDiskCacheMissReturnsFalseNoError(t *testing.T) {
	c := newTestCache(t)
	_, ok, err := c.Get([32]byte{9, 9, 9})
	if err != nil {
		t.Fatalf("expected no error on a miss, got %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for a key never written")
	}
}

func TestDiskCacheNilIsSafeNoop(t *testing.T) {
	var c *DiskCache
	if err := c.Put([32]byte{}, FileResult{}); err != nil {
		t.Fatalf("Put on nil cache: %v", err)
	}
	_, ok, err := c.Get([32]byte{})
	if err != nil || ok {
		t.Fatalf("expected a nil cache to behave as an always-miss no-op, got ok=%v err=%v", ok, err)
	}
}

func TestDiskCacheDropAllRemovesEntries(t *testing.T) {
	c := newTestCache(t)
	key := [32]byte{4, 5, 6}
	if err := c.Put(key, FileResult{Path: "a.ts"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	_, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get after DropAll: %v", err)
	}
	if ok {
		t.Fatalf("expected DropAll to invalidate previously-cached entries")
	}
}
