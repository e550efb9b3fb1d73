package profile

import "sync"

// Memory is an in-process profile store. It counts reads, writes and
// UserInitiated queries so callers can check whether a store was touched.
type Memory struct {
	mu            sync.Mutex
	userInitiated bool
	values        map[string]int
	reads         int
	writes        int
	guards        int
}

// NewMemory returns an empty in-memory store.
func NewMemory(userInitiated bool) *Memory {
	return &Memory{userInitiated: userInitiated, values: make(map[string]int)}
}

// UserInitiated reports whether the store belongs to a user-initiated
// session.
func (m *Memory) UserInitiated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guards++
	return m.userInitiated
}

// SetUserInitiated changes the answer UserInitiated gives from now on.
func (m *Memory) SetUserInitiated(v bool) {
	m.mu.Lock()
	m.userInitiated = v
	m.mu.Unlock()
}

// ReadInt returns the value under key, or def if there is none.
func (m *Memory) ReadInt(key string, def int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// WriteInt stores value under key.
func (m *Memory) WriteInt(key string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	m.values[key] = value
}

// Values returns a copy of the stored values.
func (m *Memory) Values() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Calls returns the number of ReadInt and WriteInt calls made so far.
func (m *Memory) Calls() (reads, writes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads, m.writes
}

// GuardQueries returns the number of UserInitiated calls made so far.
func (m *Memory) GuardQueries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.guards
}
