package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ofimatica/catalog-system/internal/core/domain"
	"github.com/ofimatica/catalog-system/internal/core/ports"
)

// ResourceHandler handles HTTP requests for catalog resources.
type ResourceHandler struct {
	service ports.ResourceService
}

func NewResourceHandler(service ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// List handles GET /v1/resources — the public catalog browse endpoint.
//
// @Summary      Browse the catalog
// @Tags         resources
// @Produce      json
// @Param        name       query     string  false  "Substring of the title"
// @Param        type       query     string  false  "Resource type"  Enums(book, movie, music)
// @Param        year       query     int     false  "Exact publication year"
// @Param        author     query     string  false  "Substring of the author"
// @Param        page       query     int     false  "1-based page"   default(1)
// @Param        page_size  query     int     false  "Page size"      default(20)
// @Success      200        {object}  listResourcesResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/resources [get]
func (h *ResourceHandler) List(c echo.Context) error {
	filter := ports.ResourceFilter{
		Name:   c.QueryParam("name"),
		Author: c.QueryParam("author"),
	}

	if raw := c.QueryParam("type"); raw != "" {
		t, err := domain.ParseResourceType(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "type must be one of: book, movie, music")
		}
		filter.Type = t
	}

	if raw := c.QueryParam("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "year must be an integer")
		}
		filter.Year = &year
	}

	filter.Page, filter.PageSize = parsePagination(c)

	page, err := h.service.Filter(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]resourceResponse, 0, len(page.Items))
	for _, r := range page.Items {
		items = append(items, toResourceResponse(r))
	}

	return c.JSON(http.StatusOK, listResourcesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: page.TotalPages,
		},
	})
}

// Get handles GET /v1/resources/:id.
//
// @Summary      Get a resource by id
// @Tags         resources
// @Produce      json
// @Param        id   path      string  true  "Resource id"
// @Success      200  {object}  resourceResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/resources/{id} [get]
func (h *ResourceHandler) Get(c echo.Context) error {
	resource, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResourceResponse(resource))
}

// Create handles POST /v1/resources (any authenticated caller).
//
// @Summary      Create a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createResourceRequest  true  "Resource details"
// @Success      201   {object}  resourceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/resources [post]
func (h *ResourceHandler) Create(c echo.Context) error {
	var req createResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resource, err := h.service.Create(c.Request().Context(), ports.CreateResourceInput{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		Author:      req.Author,
		Publication: req.Publication,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toResourceResponse(resource))
}

// Edit handles PATCH /v1/resources/:id (admin only).
//
// @Summary      Edit a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Resource id"
// @Param        body  body      editResourceRequest  true  "Fields to change"
// @Success      200   {object}  resourceResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/resources/{id} [patch]
func (h *ResourceHandler) Edit(c echo.Context) error {
	var req editResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	if err := h.service.Edit(c.Request().Context(), id, ports.EditResourceInput{
		Name:        req.Name,
		Description: req.Description,
		Author:      req.Author,
		Publication: req.Publication,
	}); err != nil {
		return err
	}

	resource, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResourceResponse(resource))
}

// Delete handles DELETE /v1/resources/:id (admin only).
//
// @Summary      Delete a resource
// @Tags         resources
// @Security     BearerAuth
// @Param        id   path  string  true  "Resource id"
// @Success      204  "No Content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/resources/{id} [delete]
func (h *ResourceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
