package handler

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.InventoryService
}

func NewTransactionHandler(s service.InventoryService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

type CreateTransactionRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note"`
	// CostPrice is the unit cost of the incoming goods; only meaningful for
	// inbound movements.
	CostPrice float64 `json:"costPrice"`
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid JSON")
	}

	entry, err := h.service.RecordTransaction(service.RecordTransactionInput{
		ProductID: req.ProductID,
		Type:      model.TransactionType(req.Type),
		Quantity:  req.Quantity,
		Notes:     req.Note,
		CostPrice: req.CostPrice,
	}, getActor(c))
	if err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "Stock movement recorded", entry)
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.service.ListTransactions()
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, len(transactions), transactions)
}
