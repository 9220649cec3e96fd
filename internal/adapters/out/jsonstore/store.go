// Package jsonstore persists the whole system state as JSON files, one per
// collection, under a single data directory. Every unit of work loads the
// files it needs into memory, stages changes there, and rewrites the touched
// files on commit. A store-wide mutex serializes units of work, which gives
// the same all-or-nothing visibility the PostgreSQL adapter gets from real
// transactions.
//
// The format is the one an operator can read and edit by hand: indented
// JSON arrays with camelCase fields, statuses as strings, and timestamps in
// RFC 3339.
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	ordersFile      = "orders.json"
	dronesFile      = "drones.json"
	restaurantsFile = "restaurants.json"
	menuItemsFile   = "menu_items.json"
	customersFile   = "customers.json"
)

// Store is the handle to a data directory. All units of work created from
// one Store share its lock.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore opens (and if necessary creates) the data directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
