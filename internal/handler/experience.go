// Package handler exposes the HTTP handlers of the booking API.  All
// endpoints are public: the catalog is browsable by guests and the
// booking flow collects customer details in the request body, so no
// authentication middleware is involved.  Store dependencies are
// declared as interfaces so tests can substitute mocks.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/repository"
)

// ExperienceStore is the catalog access the handlers need.  Implemented
// by *repository.ExperienceRepo.
type ExperienceStore interface {
	List(ctx context.Context) ([]repository.ExperienceRow, error)
	GetByID(ctx context.Context, id string) (*repository.ExperienceDetail, error)
	Search(ctx context.Context, q repository.ExperienceSearchQuery) ([]repository.ExperienceRow, int64, error)
}

// CatalogHandler serves the read-only experience catalog.
type CatalogHandler struct {
	Experiences ExperienceStore
}

// NewCatalogHandler constructs a CatalogHandler.  The store must be non-nil.
func NewCatalogHandler(store ExperienceStore) *CatalogHandler {
	if store == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Experiences: store}
}

// List handles GET /experiences.  Without query parameters it returns
// the whole catalog ordered newest first, as a bare JSON array for
// compatibility with existing clients.  With ?q= or ?location= it
// performs a substring search and returns a paginated envelope.
func (h *CatalogHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	query := strings.TrimSpace(c.QueryParam("q"))
	location := strings.TrimSpace(c.QueryParam("location"))

	if query == "" && location == "" {
		items, err := h.Experiences.List(ctx)
		if err != nil {
			c.Logger().Errorf("catalog list failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
		return c.JSON(http.StatusOK, items)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	ps, _ := strconv.Atoi(c.QueryParam("page_size"))
	if ps < 1 {
		ps = 20
	}
	if ps > 100 {
		ps = 100
	}

	items, total, err := h.Experiences.Search(ctx, repository.ExperienceSearchQuery{
		Query:    query,
		Location: location,
		Page:     page,
		PageSize: ps,
	})
	if err != nil {
		c.Logger().Errorf("catalog search failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":      items,
		"total":     total,
		"page":      page,
		"page_size": ps,
	})
}

// Get handles GET /experiences/:id.  It returns the experience with
// its dates and time slots nested, 404 when the ID is unknown.
func (h *CatalogHandler) Get(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	det, err := h.Experiences.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrExperienceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Experience not found"})
		}
		c.Logger().Errorf("catalog detail failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, det)
}
