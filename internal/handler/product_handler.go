package handler

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// ProductRequest deliberately has no stockQuantity field: stock can only be
// changed through transactions, so a client supplying it is silently ignored.
type ProductRequest struct {
	Name         string     `json:"name"`
	SKU          string     `json:"sku"`
	Description  string     `json:"description"`
	Unit         string     `json:"unit"`
	CostPrice    float64    `json:"costPrice"`
	SalePrice    float64    `json:"salePrice"`
	MinimumStock int        `json:"minimumStock"`
	CategoryID   uuid.UUID  `json:"categoryId"`
	SupplierID   *uuid.UUID `json:"supplierId"`
}

func (r *ProductRequest) toModel() *model.Product {
	return &model.Product{
		Name:         r.Name,
		SKU:          r.SKU,
		Description:  r.Description,
		Unit:         r.Unit,
		CostPrice:    r.CostPrice,
		SalePrice:    r.SalePrice,
		MinimumStock: r.MinimumStock,
		CategoryID:   r.CategoryID,
		SupplierID:   r.SupplierID,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, len(products), products)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	product := req.toModel()
	if err := h.service.CreateProduct(product, getActor(c)); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "Product created", product)
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid product ID")
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	updated, err := h.service.UpdateProduct(id, req.toModel(), getActor(c))
	if err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Product updated", updated)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid product ID")
	}

	if err := h.service.DeleteProduct(id, getActor(c)); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Product deleted", fiber.Map{"id": id})
}
