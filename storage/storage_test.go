package storage

import (
	"testing"
)

func openTestStore(t *testing.T, driver string) Store {
	t.Helper()

	store, err := Open(driver, t.TempDir())
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", driver, err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	for _, driver := range []string{"bolt", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			store := openTestStore(t, driver)

			in := []string{"a", "b", "c"}
			if err := store.Set("test-key", in); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			var out []string
			if err := store.Get("test-key", &out); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if len(out) != 3 || out[0] != "a" || out[2] != "c" {
				t.Fatalf("round trip mismatch: %v", out)
			}
		})
	}
}

func TestStoreMissingKeyLeavesDefault(t *testing.T) {
	for _, driver := range []string{"bolt", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			store := openTestStore(t, driver)

			out := []string{"default"}
			if err := store.Get("never-written", &out); err != nil {
				t.Fatalf("Get on missing key failed: %v", err)
			}
			if len(out) != 1 || out[0] != "default" {
				t.Fatalf("missing key should leave target untouched, got %v", out)
			}
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	for _, driver := range []string{"bolt", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			store := openTestStore(t, driver)

			if err := store.Set("k", map[string]int{"v": 1}); err != nil {
				t.Fatalf("first Set failed: %v", err)
			}
			if err := store.Set("k", map[string]int{"v": 2}); err != nil {
				t.Fatalf("second Set failed: %v", err)
			}

			var out map[string]int
			if err := store.Get("k", &out); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if out["v"] != 2 {
				t.Fatalf("expected overwritten value 2, got %d", out["v"])
			}
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open("redis", t.TempDir()); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
