// Package db provides currency and rate repositories backed by BadgerDB or memory
package db

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"
)

const (
	currencyPrefix = "currency:"
	ratePrefix     = "rate:"
)

// recordKey builds a key whose byte order matches signed ID order: the ID is
// written big-endian with its sign bit flipped.
func recordKey(prefix string, id int) []byte {
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], uint64(int64(id))^(1<<63))
	return key
}

func putJSON(db *badger.DB, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	return db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

func getJSON(db *badger.DB, key []byte, v interface{}) error {
	return db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// scanPrefix calls fn with the value of every key under prefix, in key order
func scanPrefix(db *badger.DB, prefix string, fn func(val []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

// OpenBadger opens (creating if needed) a BadgerDB at path with Badger's own logger disabled
func OpenBadger(path string) (*badger.DB, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
