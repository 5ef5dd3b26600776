package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	picksRecorded    int
	rarityLookups    int
	gridsShared      int
	pickEventsFailed int
	storeDurations   map[string][]float64
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		storeDurations: make(map[string][]float64),
	}
}

func (m *Mock) IncPicksRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.picksRecorded++
}

func (m *Mock) IncRarityLookups() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rarityLookups++
}

func (m *Mock) IncGridsShared() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gridsShared++
}

func (m *Mock) IncPickEventsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pickEventsFailed++
}

func (m *Mock) ObserveStoreDuration(operation string, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeDurations[operation] = append(m.storeDurations[operation], seconds)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PicksRecorded returns the number of times IncPicksRecorded was called.
func (m *Mock) PicksRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.picksRecorded
}

// RarityLookups returns the number of times IncRarityLookups was called.
func (m *Mock) RarityLookups() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rarityLookups
}

// GridsShared returns the number of times IncGridsShared was called.
func (m *Mock) GridsShared() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gridsShared
}

// PickEventsFailed returns the number of times IncPickEventsFailed was called.
func (m *Mock) PickEventsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pickEventsFailed
}

// StoreObservations returns how many durations were observed for an operation.
func (m *Mock) StoreObservations(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.storeDurations[operation])
}
