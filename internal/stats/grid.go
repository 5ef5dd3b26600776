package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ShareGrid stores an immutable snapshot of a grid under a fresh random id.
func (s *store) ShareGrid(ctx context.Context, grid [][]string) (string, error) {
	defer s.observe("share_grid", time.Now())

	blob, err := msgpack.Marshal(grid)
	if err != nil {
		return "", fmt.Errorf("failed to encode grid: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO shared_grids (id, grid, created_at) VALUES (?, ?, ?)",
		id, blob, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to share grid: %w", err)
	}

	s.metrics.IncGridsShared()
	log.Info("Shared grid", "id", id, "rows", len(grid))
	return id, nil
}

// GetSharedGrid looks up a shared grid. Unknown ids yield an empty grid.
func (s *store) GetSharedGrid(ctx context.Context, id string) ([][]string, error) {
	defer s.observe("get_shared_grid", time.Now())

	var blob []byte
	err := s.db.QueryRowContext(ctx, "SELECT grid FROM shared_grids WHERE id = ?", id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("Shared grid not found", "id", id)
		return [][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shared grid %s: %w", id, err)
	}

	var grid [][]string
	if err := msgpack.Unmarshal(blob, &grid); err != nil {
		return nil, fmt.Errorf("failed to decode shared grid %s: %w", id, err)
	}
	if grid == nil {
		grid = [][]string{}
	}
	return grid, nil
}
