package handlers

import (
	"GreenBite-Backend/domain"
	"GreenBite-Backend/internal/api/presenters"
	"GreenBite-Backend/pkg/catalog"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetDishes(c *fiber.Ctx) error
		GetDishDetails(c *fiber.Ctx) error
		GetAddOns(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) GetDishes(c *fiber.Ctx) error {
	dishes, err := h.catalogService.GetDishes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, dishes, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *catalogHandler) GetDishDetails(c *fiber.Ctx) error {
	dishID := c.Params("id")

	dish, err := h.catalogService.GetDishByID(c.Context(), dishID)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDish, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDish, err)
	}

	return presenters.SuccessResponse(c, dish, fiber.StatusOK, domain.MessageSuccessGetDish)
}

func (h *catalogHandler) GetAddOns(c *fiber.Ctx) error {
	addOns, err := h.catalogService.GetAddOns(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAddOns, err)
	}

	return presenters.SuccessResponse(c, addOns, fiber.StatusOK, domain.MessageSuccessGetAddOns)
}
