package sdk

// MemState is the in-memory State host used by tests and the demo binary.
type MemState struct {
	db map[string]string
}

func NewMemState() *MemState {
	return &MemState{db: make(map[string]string)}
}

func (m *MemState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemState) Delete(key string) {
	delete(m.db, key)
}

// Len is a test helper for asserting storage got cleaned up.
func (m *MemState) Len() int {
	return len(m.db)
}

func (m *MemState) Snapshot() any {
	cp := make(map[string]string, len(m.db))
	for k, v := range m.db {
		cp[k] = v
	}
	return cp
}

func (m *MemState) Restore(snap any) {
	m.db = snap.(map[string]string)
}
