package store

import "sync"

func init() {
	Register("mem", startMem)
}

// MemAdapter keeps records in process memory. It backs tests and runs
// where no database path is available.
type MemAdapter struct {
	mu      sync.RWMutex
	records map[string][]byte
	prefix  string
}

func startMem(path string, prefix string) (Adapter, error) {
	return &MemAdapter{records: map[string][]byte{}, prefix: prefix}, nil
}

func (m *MemAdapter) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[formatKey(m.prefix, key)]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemAdapter) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.records[formatKey(m.prefix, key)] = stored
	return nil
}

func (m *MemAdapter) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, formatKey(m.prefix, key))
	return nil
}

func (m *MemAdapter) Close() error {
	return nil
}
