package endpoint

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrURLRequired is returned when an endpoint is created without a URL.
var ErrURLRequired = errors.New("url is required")

// ErrInactive is returned when an operation targets a disabled endpoint.
var ErrInactive = errors.New("endpoint is not active")

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// UseCase defines the business operations for endpoint management
type UseCase interface {
	List(ctx context.Context) ([]Endpoint, error)
	Get(ctx context.Context, id int64) (Endpoint, error)
	Create(ctx context.Context, url string, headers map[string]string, isPrimary bool) (Endpoint, error)
	Update(ctx context.Context, id int64, changes Changes) (Endpoint, error)
	Delete(ctx context.Context, id int64) error
	Active(ctx context.Context) ([]Endpoint, error)
}

type Service struct {
	Repo Repository
}

// NewService creates a new endpoint service with dependency injection
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// List returns all configured endpoints, primary first
func (s *Service) List(ctx context.Context) ([]Endpoint, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing endpoints: %w", err)
	}
	return all, nil
}

// Get returns one endpoint by id
func (s *Service) Get(ctx context.Context, id int64) (Endpoint, error) {
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Endpoint{}, fmt.Errorf("getting endpoint %d: %w", id, err)
	}
	return e, nil
}

// Create registers a new endpoint, active by default
func (s *Service) Create(ctx context.Context, url string, headers map[string]string, isPrimary bool) (Endpoint, error) {
	if strings.TrimSpace(url) == "" {
		return Endpoint{}, ErrURLRequired
	}

	created, err := s.Repo.Insert(ctx, Endpoint{
		URL:       url,
		IsPrimary: isPrimary,
		Headers:   headers,
		IsActive:  true,
	})
	if err != nil {
		return Endpoint{}, fmt.Errorf("inserting endpoint: %w", err)
	}
	return created, nil
}

// Update applies a partial update to an endpoint
func (s *Service) Update(ctx context.Context, id int64, changes Changes) (Endpoint, error) {
	if changes.URL != nil && strings.TrimSpace(*changes.URL) == "" {
		return Endpoint{}, ErrURLRequired
	}

	updated, err := s.Repo.Update(ctx, id, changes)
	if err != nil {
		return Endpoint{}, fmt.Errorf("updating endpoint %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes an endpoint. Delivery logs that reference its URL are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting endpoint %d: %w", id, err)
	}
	return nil
}

// Active returns the endpoints targeted by live inbound traffic
func (s *Service) Active(ctx context.Context) ([]Endpoint, error) {
	active, err := s.Repo.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active endpoints: %w", err)
	}
	return active, nil
}
