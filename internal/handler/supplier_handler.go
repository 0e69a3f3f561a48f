package handler

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

type SupplierRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func (r *SupplierRequest) toModel() *model.Supplier {
	return &model.Supplier{
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
	}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, len(suppliers), suppliers)
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	supplier := req.toModel()
	if err := h.service.Create(supplier, getActor(c)); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "Supplier created", supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid supplier ID")
	}

	var req SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	updated, err := h.service.Update(id, req.toModel(), getActor(c))
	if err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Supplier updated", updated)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid supplier ID")
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Supplier deleted", fiber.Map{"id": id})
}
