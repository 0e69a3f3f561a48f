package service

import (
	"testing"
	"time"

	"go-warehouse-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryValueReport(t *testing.T) {
	env := newTestEnv(t)

	a := env.createProduct(t, "Widget", "W-1")
	env.stockProduct(t, a, 10, 100) // value 1000

	b := env.createProduct(t, "Gadget", "G-1")
	env.stockProduct(t, b, 4, 25) // value 100

	// Out of stock, contributes nothing and is not counted.
	env.createProduct(t, "Gizmo", "Z-1")

	report, err := env.reports.InventoryValue()
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalProducts)
	assert.InDelta(t, 1100, report.TotalInventoryValue, 1e-9)
}

func TestLowStockAndOutOfStockReports(t *testing.T) {
	env := newTestEnv(t)

	low := env.createProduct(t, "Widget", "W-1", func(p *model.Product) {
		p.MinimumStock = 5
	})
	env.stockProduct(t, low, 2, 10)

	healthy := env.createProduct(t, "Gadget", "G-1", func(p *model.Product) {
		p.MinimumStock = 5
	})
	env.stockProduct(t, healthy, 8, 10)

	env.createProduct(t, "Gizmo", "Z-1") // never stocked

	lowStock, err := env.reports.LowStock()
	require.NoError(t, err)
	require.Len(t, lowStock, 1)
	assert.Equal(t, "Widget", lowStock[0].Name)

	outOfStock, err := env.reports.OutOfStock()
	require.NoError(t, err)
	require.Len(t, outOfStock, 1)
	assert.Equal(t, "Gizmo", outOfStock[0].Name)
}

func TestTransactionSummaryReport(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Widget", "W-1")
	env.stockProduct(t, product, 10, 50) // in value 500

	_, err := env.inventory.RecordTransaction(RecordTransactionInput{
		ProductID: product.ID,
		Type:      model.TxOut,
		Quantity:  4,
	}, "tester") // out value 4 * 50 = 200
	require.NoError(t, err)

	today := time.Now().Truncate(24 * time.Hour)

	// End date is inclusive: a range ending today covers today's entries.
	report, err := env.reports.TransactionSummary(today, today)
	require.NoError(t, err)
	assert.InDelta(t, 500, report.TotalInValue, 1e-9)
	assert.InDelta(t, 200, report.TotalOutValue, 1e-9)

	// A window entirely in the past sees nothing.
	past, err := env.reports.TransactionSummary(today.AddDate(0, 0, -10), today.AddDate(0, 0, -5))
	require.NoError(t, err)
	assert.Zero(t, past.TotalInValue)
	assert.Zero(t, past.TotalOutValue)
}

func TestStockMovementReport(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Widget", "W-1")
	env.stockProduct(t, product, 10, 50)

	_, err := env.inventory.RecordTransaction(RecordTransactionInput{
		ProductID: product.ID,
		Type:      model.TxOut,
		Quantity:  4,
	}, "tester")
	require.NoError(t, err)

	data, err := env.reports.StockMovement(7)
	require.NoError(t, err)

	var inbound, outbound int
	for _, day := range data {
		inbound += day.Inbound
		outbound += day.Outbound
	}
	assert.Equal(t, 10, inbound)
	assert.Equal(t, 4, outbound)
}
