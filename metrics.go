package skipstore

import "sync/atomic"

// Metrics counts list operations. Searches run concurrently under the shared
// lock, so every counter is atomic.
type Metrics struct {
	inserts      atomic.Int64
	conflicts    atomic.Int64
	deletes      atomic.Int64
	deleteMisses atomic.Int64
	searches     atomic.Int64
	searchHits   atomic.Int64
}

// Stats is a point-in-time copy of Metrics.
type Stats struct {
	Inserts      int64 // successful inserts
	Conflicts    int64 // inserts rejected with AlreadyExists
	Deletes      int64 // deletes that removed a node
	DeleteMisses int64 // deletes of absent keys
	Searches     int64
	SearchHits   int64
}

func (m *Metrics) IncInsert()   { m.inserts.Add(1) }
func (m *Metrics) IncConflict() { m.conflicts.Add(1) }

func (m *Metrics) IncDelete(found bool) {
	if found {
		m.deletes.Add(1)
		return
	}
	m.deleteMisses.Add(1)
}

func (m *Metrics) IncSearch(found bool) {
	m.searches.Add(1)
	if found {
		m.searchHits.Add(1)
	}
}

// Snapshot copies the current counter values.
func (m *Metrics) Snapshot() Stats {
	return Stats{
		Inserts:      m.inserts.Load(),
		Conflicts:    m.conflicts.Load(),
		Deletes:      m.deletes.Load(),
		DeleteMisses: m.deleteMisses.Load(),
		Searches:     m.searches.Load(),
		SearchHits:   m.searchHits.Load(),
	}
}
