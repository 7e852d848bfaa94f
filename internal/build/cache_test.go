package build

import (
	"path/filepath"
	"testing"
)

const mainSource = "main() -> Int { 1 }"

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache", "flip.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)

	if _, ok, err := cache.Lookup("prog.flip", mainSource, "flip.h"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := cache.Store("prog.flip", mainSource, "flip.h", "int main(void) {}\n"); err != nil {
		t.Fatal(err)
	}

	got, ok, err := cache.Lookup("prog.flip", mainSource, "flip.h")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got != "int main(void) {}\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestCacheKey(t *testing.T) {
	cache := openTestCache(t)

	if err := cache.Store("src/prog.flip", mainSource, "flip.h", "a"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := cache.Lookup("src/prog.flip", mainSource, "other.h"); ok {
		t.Error("lookup with a different header hit the cache")
	}
	if _, ok, _ := cache.Lookup("src/renamed.flip", mainSource, "flip.h"); ok {
		t.Error("lookup with a different file name hit the cache")
	}
	if _, ok, _ := cache.Lookup("elsewhere/prog.flip", mainSource, "flip.h"); !ok {
		t.Error("the same base name in another directory should hit the cache")
	}
	if computeKey("a.flip", "x", "flip.h") != computeKey("a.flip", "x", "flip.h") {
		t.Error("keys must be deterministic")
	}
}

func TestCacheReplace(t *testing.T) {
	cache := openTestCache(t)

	for _, out := range []string{"first", "second"} {
		if err := cache.Store("prog.flip", "src", "flip.h", out); err != nil {
			t.Fatal(err)
		}
	}
	if got, _, _ := cache.Lookup("prog.flip", "src", "flip.h"); got != "second" {
		t.Errorf("expected replaced output, got %q", got)
	}
}

func TestCachePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flip.db")

	cache, err := OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.Store("prog.flip", "src", "flip.h", "out"); err != nil {
		t.Fatal(err)
	}
	cache.Close()

	reopened, err := OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	if got, ok, _ := reopened.Lookup("prog.flip", "src", "flip.h"); !ok || got != "out" {
		t.Errorf("expected persisted output, got %q (ok=%v)", got, ok)
	}
}
