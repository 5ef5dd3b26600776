package roster

import "sync"

// MockLookup is a mock implementation of the PictureLookup interface for testing.
// It is safe for concurrent use.
type MockLookup struct {
	mu sync.Mutex

	GetPlayerPictureFunc func(id string) string

	GetPlayerPictureCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockLookup {
	return &MockLookup{}
}

// Reset clears all call records.
func (m *MockLookup) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerPictureCalls = nil
}

func (m *MockLookup) GetPlayerPicture(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerPictureCalls = append(m.GetPlayerPictureCalls, id)
	if m.GetPlayerPictureFunc != nil {
		return m.GetPlayerPictureFunc(id)
	}
	return ""
}
