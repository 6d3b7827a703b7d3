package appender

import (
	"sync"

	"github.com/philipp01105/levellog/core"
)

// MemoryAppender keeps every record it receives. It is meant for tests
// and for inspecting what a logger emitted.
type MemoryAppender struct {
	mu      sync.Mutex
	records []*core.Record
}

// NewMemoryAppender creates an empty memory appender
func NewMemoryAppender() *MemoryAppender {
	return &MemoryAppender{}
}

// Append stores rec
func (m *MemoryAppender) Append(rec *core.Record) error {
	m.mu.Lock()
	m.records = append(m.records, rec)
	m.mu.Unlock()
	return nil
}

// Records returns the stored records in arrival order
func (m *MemoryAppender) Records() []*core.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*core.Record, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of stored records
func (m *MemoryAppender) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Last returns the most recent record, or nil
func (m *MemoryAppender) Last() *core.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.records) == 0 {
		return nil
	}
	return m.records[len(m.records)-1]
}

// Reset drops every stored record
func (m *MemoryAppender) Reset() {
	m.mu.Lock()
	m.records = nil
	m.mu.Unlock()
}
