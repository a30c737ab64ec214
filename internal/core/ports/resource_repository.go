package ports

import (
	"context"

	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// ResourceFilter carries all query parameters for listing resources.
type ResourceFilter struct {
	// Name is matched case-insensitively as a substring.
	Name string
	// Type, when non-empty, requires an exact match.
	Type domain.ResourceType
	// Year, when non-nil, requires an exact match on the publication year.
	Year *int
	// Author is matched case-insensitively as a substring.
	Author string
	// Page is 1-based; skip = PageSize * (Page - 1).
	Page     int
	PageSize int
}

// ResourceRepository defines persistence operations for catalog resources.
type ResourceRepository interface {
	Create(ctx context.Context, r *domain.Resource) (*domain.Resource, error)
	FindByID(ctx context.Context, id string) (*domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id string) error
	// Filter returns a page of resources matching the filter plus the
	// total matching count, ordered by identifier.
	Filter(ctx context.Context, f ResourceFilter) ([]*domain.Resource, int64, error)
}
