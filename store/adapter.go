// Package store provides the narrow key-value contract the wallet layer
// persists records through, with badger-backed and in-memory adapters.
package store

import (
	"bytes"
	"fmt"
)

// Adapter is the storage contract. All keys are namespaced by the prefix
// the adapter was opened with, so independent components can share one
// backend without colliding.
type Adapter interface {
	// Get returns the record for the key, or (nil, nil) when no record
	// exists.
	Get(key string) ([]byte, error)
	// Set saves or updates the record for the key.
	Set(key string, value []byte) error
	// Delete removes the record for the key. Deleting a missing key is
	// not an error.
	Delete(key string) error
	Close() error
}

// Constructor opens an adapter rooted at path, namespacing every key with
// the given prefix.
type Constructor func(path string, prefix string) (Adapter, error)

var implementations = map[string]Constructor{}

// Register makes a storage adapter available under the given name.
func Register(name string, constructor Constructor) {
	if _, ok := implementations[name]; ok {
		panic(fmt.Sprintf("storage adapter with name [%s] is already registered", name))
	}
	implementations[name] = constructor
}

// Open constructs a registered adapter by name and verifies the backend
// with a write-read-delete probe cycle before handing it out.
func Open(name string, path string, prefix string) (Adapter, error) {
	constructor, ok := implementations[name]
	if !ok {
		return nil, newStorageError("unknown storage adapter [%s]", name)
	}
	adapter, err := constructor(path, prefix)
	if err != nil {
		return nil, err
	}
	if err := probe(adapter); err != nil {
		adapter.Close()
		return nil, err
	}
	return adapter, nil
}

const (
	probeKey   = "trinity-availability-test"
	probeValue = "probe_value"
)

func probe(adapter Adapter) error {
	if err := adapter.Set(probeKey, []byte(probeValue)); err != nil {
		return err
	}
	read, err := adapter.Get(probeKey)
	if err != nil {
		return err
	}
	if err := adapter.Delete(probeKey); err != nil {
		return err
	}
	if !bytes.Equal(read, []byte(probeValue)) {
		return newStorageError("probe check failed: written and read values do not match")
	}
	return nil
}

func formatKey(prefix string, key string) string {
	return prefix + "-" + key
}
