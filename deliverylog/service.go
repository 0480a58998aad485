package deliverylog

import (
	"context"
	"fmt"
)

// DefaultLimit caps unpaginated listings.
const DefaultLimit = 50

// UseCase defines the read/maintenance operations exposed over the delivery log
type UseCase interface {
	List(ctx context.Context, filter Filter) ([]Entry, error)
	Clear(ctx context.Context) error
}

type Service struct {
	Repo Repository
}

// NewService creates a new delivery log service with dependency injection
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// List returns log entries matching the filter, newest first
func (s *Service) List(ctx context.Context, filter Filter) ([]Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	entries, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing delivery log: %w", err)
	}
	return entries, nil
}

// Clear removes every delivery log entry
func (s *Service) Clear(ctx context.Context) error {
	if err := s.Repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing delivery log: %w", err)
	}
	return nil
}
