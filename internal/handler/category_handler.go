package handler

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, len(categories), categories)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	category := &model.Category{Name: req.Name, Description: req.Description}
	if err := h.service.Create(category, getActor(c)); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "Category created", category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid category ID")
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &model.Category{Name: req.Name, Description: req.Description}, getActor(c))
	if err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Category updated", updated)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid category ID")
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Category deleted", fiber.Map{"id": id})
}
