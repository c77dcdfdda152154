package contract

// MockState keeps the kv in memory so tests run without a host.
type MockState struct {
	db map[string]string
}

func NewMockState() *MockState {
	return &MockState{db: make(map[string]string)}
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
}

// Snapshot copies the whole map so tests can diff state before/after a call.
func (m *MockState) Snapshot() map[string]string {
	out := make(map[string]string, len(m.db))
	for k, v := range m.db {
		out[k] = v
	}
	return out
}

// Restore overwrites the kv with a previously taken snapshot. Tests use it to
// model the host's atomic rollback after an aborted instruction.
func (m *MockState) Restore(snap map[string]string) {
	m.db = make(map[string]string, len(snap))
	for k, v := range snap {
		m.db[k] = v
	}
}
