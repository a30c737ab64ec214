package ports

import (
	"context"

	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// CreateResourceInput carries all data needed to create a catalog entry.
// Every field is required in create mode.
type CreateResourceInput struct {
	Type        string
	Name        string
	Description string
	Author      string
	Publication *int
}

// EditResourceInput is a partial patch: blank strings and a nil year mean
// "no change requested". Present values are still format-checked.
type EditResourceInput struct {
	Name        string
	Description string
	Author      string
	Publication *int
}

// ResourcePage is returned by Filter.
type ResourcePage struct {
	Items      []*domain.Resource
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ResourceService defines use-case operations over the catalog.
type ResourceService interface {
	Create(ctx context.Context, input CreateResourceInput) (*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	Edit(ctx context.Context, id string, input EditResourceInput) error
	Delete(ctx context.Context, id string) error
	Filter(ctx context.Context, f ResourceFilter) (*ResourcePage, error)
}
