package store

import (
	"sync"

	"github.com/dgraph-io/badger"
)

func init() {
	Register("badger", startBadger)
}

// BadgerAdapter persists records in a badger database on disk.
type BadgerAdapter struct {
	db     *badger.DB
	dbLock sync.Mutex
	prefix string
}

func startBadger(path string, prefix string) (Adapter, error) {
	opts := badger.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path

	db, err := badger.Open(opts)
	if err != nil {
		return nil, newStorageError("open database at [%s]: %v", path, err)
	}
	return &BadgerAdapter{db: db, prefix: prefix}, nil
}

func (b *BadgerAdapter) key(key string) []byte {
	return []byte(formatKey(b.prefix, key))
}

func (b *BadgerAdapter) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key(key))
		if err != nil {
			return err
		}
		data, err := item.Value()
		if err != nil {
			return err
		}
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, newStorageError("get [%s]: %v", key, err)
	}
	return value, nil
}

func (b *BadgerAdapter) Set(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key(key), value)
	})
	if err != nil {
		return newStorageError("set [%s]: %v", key, err)
	}
	return nil
}

func (b *BadgerAdapter) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(b.key(key))
	})
	if err != nil {
		return newStorageError("delete [%s]: %v", key, err)
	}
	return nil
}

// Close garbage-collects the value log and shuts the database down.
func (b *BadgerAdapter) Close() error {
	b.dbLock.Lock()
	defer b.dbLock.Unlock()

	b.db.RunValueLogGC(0.5)
	if err := b.db.Close(); err != nil {
		return newStorageError("close database: %v", err)
	}
	return nil
}
