// ABOUTME: Badger-backed key-value store used where embedded SQL is unavailable.
// ABOUTME: Mirrors the flat per-date and per-workout list layout, legacy keys included.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/lift/internal/models"
)

// Key layout: one workout list per calendar date, one set list per
// workout id, all JSON-encoded. A legacy single-workout key per date
// is consulted once and converted to the list layout.
const (
	workoutListPrefix = "workouts_"
	setListPrefix     = "sets_"
	legacyPrefix      = "workout_"
)

// KVStore is the key-value Repository implementation.
type KVStore struct {
	db *badger.DB

	mu     sync.Mutex
	lastID int64
}

// Compile-time check that KVStore implements Repository.
var _ Repository = (*KVStore)(nil)

// OpenKV opens or creates a badger store rooted at dataDir/kv.
func OpenKV(dataDir string) (*KVStore, error) {
	path := filepath.Join(dataDir, "kv")
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Close closes the underlying badger database.
func (s *KVStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// nextID assigns record ids. Ids are wall-clock milliseconds for
// compatibility with existing data; when the clock has not advanced
// past the last assigned id the counter bumps instead, so two inserts
// in the same millisecond cannot collide.
func (s *KVStore) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func workoutListKey(date string) []byte {
	return []byte(workoutListPrefix + date)
}

func setListKey(workoutID int64) []byte {
	return []byte(fmt.Sprintf("%s%d", setListPrefix, workoutID))
}

func legacyKey(date string) []byte {
	return []byte(legacyPrefix + date)
}

// getJSON reads and decodes a key inside a transaction. Missing keys
// leave dst untouched and return false.
func getJSON(txn *badger.Txn, key []byte, dst interface{}) (bool, error) {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// decodeJSON unmarshals a raw value copied out of an iterator.
func decodeJSON(val []byte, dst interface{}) error {
	return json.Unmarshal(val, dst)
}

// setJSON encodes and writes a value inside a transaction.
func setJSON(txn *badger.Txn, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// workoutList loads the workout list for a date, migrating a legacy
// single-workout record into the list layout first if one exists.
// The migration runs at most once per date: the legacy key is deleted
// after conversion.
func workoutList(txn *badger.Txn, date string) ([]*models.Workout, error) {
	var list []*models.Workout
	found, err := getJSON(txn, workoutListKey(date), &list)
	if err != nil {
		return nil, err
	}
	if found {
		return list, nil
	}

	var legacy models.Workout
	hadLegacy, err := getJSON(txn, legacyKey(date), &legacy)
	if err != nil {
		return nil, err
	}
	if !hadLegacy {
		return nil, nil
	}

	list = []*models.Workout{&legacy}
	if err := setJSON(txn, workoutListKey(date), list); err != nil {
		return nil, err
	}
	if err := txn.Delete(legacyKey(date)); err != nil {
		return nil, err
	}
	return list, nil
}

// setList loads the set list for a workout id.
func setList(txn *badger.Txn, workoutID int64) ([]*models.Set, error) {
	var list []*models.Set
	if _, err := getJSON(txn, setListKey(workoutID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// forEachPrefix walks every key with the given prefix, passing each
// key and raw value to fn.
func forEachPrefix(txn *badger.Txn, prefix string, fn func(key string, val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		key := string(item.Key())
		err := item.Value(func(val []byte) error {
			return fn(key, val)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
