package services

import (
	"context"
	"fmt"

	"github.com/yigit/contractors/internal/app/models/dto"
)

// StatsService defines the statistics operations
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	store StatsStore
	opts  Options
}

// NewStatsService creates a new StatsService
func NewStatsService(store StatsStore, opts Options) StatsService {
	return &statsService{store: store, opts: opts}
}

// GetStats computes the head count figures
func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	ctx, cancel := withTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing stats: %w", err)
	}
	response := dto.FromContractorStats(stats)
	return &response, nil
}
