package handler

import (
	"strconv"
	"time"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// InventoryValue handles GET /api/reports/inventory-value
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	report, err := h.service.InventoryValue()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, report)
}

// LowStock handles GET /api/reports/low-stock
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.service.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, len(products), products)
}

// OutOfStock handles GET /api/reports/out-of-stock
func (h *ReportHandler) OutOfStock(c *fiber.Ctx) error {
	products, err := h.service.OutOfStock()
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, len(products), products)
}

// TransactionSummary handles GET /api/reports/transactions-summary?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *ReportHandler) TransactionSummary(c *fiber.Ctx) error {
	startDate, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return respondBadRequest(c, "Query parameter 'start' must be a YYYY-MM-DD date")
	}
	endDate, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return respondBadRequest(c, "Query parameter 'end' must be a YYYY-MM-DD date")
	}
	if endDate.Before(startDate) {
		return respondBadRequest(c, "'end' must not be before 'start'")
	}

	report, err := h.service.TransactionSummary(startDate, endDate)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, report)
}

// StockMovement handles GET /api/reports/stock-movement?days=N
func (h *ReportHandler) StockMovement(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.StockMovement(days)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.Map{"period": days, "data": data})
}
