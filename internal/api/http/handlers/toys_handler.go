package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/toy-store/internal/api/dto"
	"github.com/spec-kit/toy-store/internal/auth"
	"github.com/spec-kit/toy-store/internal/query"
	"github.com/spec-kit/toy-store/internal/service"
	apperrors "github.com/spec-kit/toy-store/pkg/util"
)

// ToysHandler exposes the toy collection endpoints.
type ToysHandler struct {
	service *service.ToyService
}

// NewToysHandler constructs handler.
func NewToysHandler(toyService *service.ToyService) *ToysHandler {
	return &ToysHandler{service: toyService}
}

// List handles GET /toys.
func (h *ToysHandler) List(c *fiber.Ctx) error {
	toys, err := h.service.List(c.Context(), query.Listing(listingParams(c)))
	if err != nil {
		return err
	}
	return c.JSON(toys)
}

// Search handles GET /toys/search.
func (h *ToysHandler) Search(c *fiber.Ctx) error {
	toys, err := h.service.List(c.Context(), query.Search(c.Query("s")))
	if err != nil {
		return err
	}
	return c.JSON(toys)
}

// ByCategory handles GET /toys/category/:catName.
func (h *ToysHandler) ByCategory(c *fiber.Ctx) error {
	d := query.Category(c.Params("catName"), listingParams(c))
	toys, err := h.service.List(c.Context(), d)
	if err != nil {
		return err
	}
	return c.JSON(toys)
}

// Single handles GET /toys/single/:id.
func (h *ToysHandler) Single(c *fiber.Ctx) error {
	toy, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(toy)
}

// ByPrice handles GET /toys/price.
func (h *ToysHandler) ByPrice(c *fiber.Ctx) error {
	d := query.PriceRange(c.Query("min"), c.Query("max"))
	toys, err := h.service.List(c.Context(), d)
	if err != nil {
		return err
	}
	return c.JSON(toys)
}

// Count handles GET /toys/count.
func (h *ToysHandler) Count(c *fiber.Ctx) error {
	result, err := h.service.Count(c.Context(), query.CountLimit(c.Query("limit")))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Create handles POST /toys.
func (h *ToysHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ToyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	toy, err := h.service.Create(c.Context(), identity.ID, req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toy)
}

// Update handles PUT /toys/:id.
func (h *ToysHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ToyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.service.Update(c.Context(), c.Params("id"), identity.ID, req.Input())
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Delete handles DELETE /toys/:id.
func (h *ToysHandler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	deleted, err := h.service.Delete(c.Context(), c.Params("id"), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{DeletedCount: deleted})
}

func listingParams(c *fiber.Ctx) query.Params {
	return query.Params{
		Limit:   c.Query("limit"),
		Skip:    c.Query("skip"),
		Sort:    c.Query("sort"),
		Reverse: c.Query("reverse"),
	}
}
