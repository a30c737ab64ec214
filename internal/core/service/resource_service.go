package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ofimatica/catalog-system/internal/api/metrics"
	"github.com/ofimatica/catalog-system/internal/core/domain"
	"github.com/ofimatica/catalog-system/internal/core/ports"
)

// ResourceService implements create/edit/delete/filter over catalog
// resources, running the field validators before any mutation.
type ResourceService struct {
	repo   ports.ResourceRepository
	logger zerolog.Logger
}

func NewResourceService(repo ports.ResourceRepository, logger zerolog.Logger) *ResourceService {
	return &ResourceService{repo: repo, logger: logger}
}

// Create validates every field in create mode, aggregating all failing
// fields' codes into one error. Nothing is written on failure.
func (s *ResourceService) Create(ctx context.Context, input ports.CreateResourceInput) (*domain.Resource, error) {
	if err := validateResourceData(input.Name, input.Description, input.Author, input.Publication, false); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("resource").Inc()
		return nil, err
	}

	resourceType, err := domain.ParseResourceType(input.Type)
	if err != nil {
		return nil, err
	}

	resource := &domain.Resource{
		Type:        resourceType,
		Name:        input.Name,
		Description: input.Description,
		Author:      input.Author,
		Publication: *input.Publication,
	}

	created, err := s.repo.Create(ctx, resource)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create resource")
		return nil, err
	}

	metrics.ResourcesWrittenTotal.WithLabelValues("create", string(resourceType)).Inc()
	s.logger.Info().Str("resource_id", created.ID).Str("type", string(resourceType)).Msg("resource created")
	return created, nil
}

func (s *ResourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	return s.repo.FindByID(ctx, id)
}

// Edit applies a partial patch: blank strings and a nil year are "no
// change requested", but a present value is still format-checked. All
// violated fields are reported together and nothing is applied on
// failure.
func (s *ResourceService) Edit(ctx context.Context, id string, input ports.EditResourceInput) error {
	resource, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := validateResourceData(input.Name, input.Description, input.Author, input.Publication, true); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("resource").Inc()
		return err
	}

	// The blank predicate must match the validators': a whitespace-only
	// value passed update-mode validation as "no change" and must not be
	// applied either.
	if strings.TrimSpace(input.Name) != "" {
		resource.Name = input.Name
	}
	if strings.TrimSpace(input.Description) != "" {
		resource.Description = input.Description
	}
	if strings.TrimSpace(input.Author) != "" {
		resource.Author = input.Author
	}
	if input.Publication != nil {
		resource.Publication = *input.Publication
	}

	if err := s.repo.Update(ctx, resource); err != nil {
		return err
	}

	metrics.ResourcesWrittenTotal.WithLabelValues("edit", string(resource.Type)).Inc()
	s.logger.Info().Str("resource_id", id).Msg("resource edited")
	return nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	resource, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, resource.ID); err != nil {
		return err
	}
	metrics.ResourcesWrittenTotal.WithLabelValues("delete", string(resource.Type)).Inc()
	s.logger.Info().Str("resource_id", id).Msg("resource deleted")
	return nil
}

// Filter returns one catalog page plus pagination metadata.
func (s *ResourceService) Filter(ctx context.Context, f ports.ResourceFilter) (*ports.ResourcePage, error) {
	f.Page, f.PageSize = normalizePage(f.Page, f.PageSize)

	items, total, err := s.repo.Filter(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ports.ResourcePage{
		Items:      items,
		Total:      total,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalPages: totalPages(total, f.PageSize),
	}, nil
}

// validateResourceData runs all four field validators and aggregates every
// failing field's codes, so a caller sees the complete violation list in
// one round-trip.
func validateResourceData(name, description, author string, year *int, isUpdate bool) error {
	var codes []domain.ValidationCode
	if r := domain.ValidateName(name, isUpdate); !r.Valid {
		codes = append(codes, r.Errors...)
	}
	if r := domain.ValidateDescription(description, isUpdate); !r.Valid {
		codes = append(codes, r.Errors...)
	}
	if r := domain.ValidateAuthor(author, isUpdate); !r.Valid {
		codes = append(codes, r.Errors...)
	}
	if r := domain.ValidateYear(year, isUpdate); !r.Valid {
		codes = append(codes, r.Errors...)
	}
	if len(codes) != 0 {
		return domain.NewValidationError(codes...)
	}
	return nil
}
