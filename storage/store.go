package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Keys under which each collection is serialized. The whole collection
// is rewritten as UTF-8 JSON on every mutation.
const (
	KeyProducts     = "drinks-products"
	KeyBudgets      = "drinks-budgets"
	KeyCalculations = "consumption-calculations"
)

// Store is the key/value persistence adapter.
type Store interface {
	// Get unmarshals the value stored under key into v. A missing key
	// is not an error: v is left untouched so the caller keeps its
	// empty-collection default.
	Get(key string, v interface{}) error
	Set(key string, v interface{}) error
	Close() error
}

// Open creates the data directory and opens the configured driver.
func Open(driver, dataDir string) (Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	switch driver {
	case "bolt", "":
		return OpenBolt(filepath.Join(dataDir, "quotes.db"))
	case "sqlite":
		return OpenSQLite(filepath.Join(dataDir, "quotes.sqlite"))
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
