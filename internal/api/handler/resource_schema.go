package handler

import (
	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// --- Request types ---

type createResourceRequest struct {
	Type        string `json:"type"        validate:"required,oneof=book movie music"`
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=3000"`
	Author      string `json:"author"      validate:"required,max=50"`
	Publication *int   `json:"publication" validate:"required"`
}

// editResourceRequest is a partial patch; omitted fields are left untouched.
type editResourceRequest struct {
	Name        string `json:"name"        validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=3000"`
	Author      string `json:"author"      validate:"omitempty,max=50"`
	Publication *int   `json:"publication"`
}

// --- Response types ---

type resourceResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Publication int    `json:"publication"`
}

type listResourcesResponse struct {
	Data       []resourceResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toResourceResponse(r *domain.Resource) resourceResponse {
	return resourceResponse{
		ID:          r.ID,
		Type:        string(r.Type),
		Name:        r.Name,
		Description: r.Description,
		Author:      r.Author,
		Publication: r.Publication,
	}
}
