package stats

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the StatsStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	RecordPickFunc    func(ctx context.Context, teams TeamPair, playerName, playerID string) error
	RarityScoreFunc   func(ctx context.Context, teams TeamPair, playerName, playerID string) (float64, error)
	TopPlayerFunc     func(ctx context.Context, teams TeamPair) (*TopPlayer, error)
	GetMatchupFunc    func(ctx context.Context, teams TeamPair) (*Matchup, error)
	SetPlayerNameFunc func(ctx context.Context, teamCombination, playerName, playerID string) error
	ShareGridFunc     func(ctx context.Context, grid [][]string) (string, error)
	GetSharedGridFunc func(ctx context.Context, id string) ([][]string, error)

	// Call records
	RecordPickCalls []RecordPickCall
	ShareGridCalls  [][][]string
}

// RecordPickCall holds the arguments for a call to RecordPick.
type RecordPickCall struct {
	Teams      TeamPair
	PlayerName string
	PlayerID   string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordPickCalls = nil
	m.ShareGridCalls = nil
}

func (m *MockStore) RecordPick(ctx context.Context, teams TeamPair, playerName, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordPickCalls = append(m.RecordPickCalls, RecordPickCall{Teams: teams, PlayerName: playerName, PlayerID: playerID})
	if m.RecordPickFunc != nil {
		return m.RecordPickFunc(ctx, teams, playerName, playerID)
	}
	return nil
}

func (m *MockStore) RarityScore(ctx context.Context, teams TeamPair, playerName, playerID string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RarityScoreFunc != nil {
		return m.RarityScoreFunc(ctx, teams, playerName, playerID)
	}
	return unseenScore, nil
}

func (m *MockStore) TopPlayer(ctx context.Context, teams TeamPair) (*TopPlayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TopPlayerFunc != nil {
		return m.TopPlayerFunc(ctx, teams)
	}
	return nil, nil
}

func (m *MockStore) GetMatchup(ctx context.Context, teams TeamPair) (*Matchup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchupFunc != nil {
		return m.GetMatchupFunc(ctx, teams)
	}
	return nil, nil
}

func (m *MockStore) SetPlayerName(ctx context.Context, teamCombination, playerName, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetPlayerNameFunc != nil {
		return m.SetPlayerNameFunc(ctx, teamCombination, playerName, playerID)
	}
	return nil
}

func (m *MockStore) ShareGrid(ctx context.Context, grid [][]string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ShareGridCalls = append(m.ShareGridCalls, grid)
	if m.ShareGridFunc != nil {
		return m.ShareGridFunc(ctx, grid)
	}
	return "", nil
}

func (m *MockStore) GetSharedGrid(ctx context.Context, id string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSharedGridFunc != nil {
		return m.GetSharedGridFunc(ctx, id)
	}
	return [][]string{}, nil
}
