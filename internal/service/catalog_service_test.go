package service

import (
	"testing"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductStartsAtZeroStock(t *testing.T) {
	env := newTestEnv(t)
	category := env.createCategory(t, "Phones")

	product := &model.Product{
		Name:       "Handset",
		SKU:        "H-1",
		Unit:       "pcs",
		CategoryID: category.ID,
		// A sneaky initial stock level is discarded.
		StockQuantity: 99,
		CostPrice:     12.5,
		SalePrice:     20,
	}
	require.NoError(t, env.catalog.CreateProduct(product, "tester"))

	fresh := env.reloadProduct(t, product)
	assert.Equal(t, 0, fresh.StockQuantity)
	assert.InDelta(t, 12.5, fresh.CostPrice, 1e-9)
	assert.InDelta(t, 20, fresh.SalePrice, 1e-9)
}

func TestCreateProductRequiredFields(t *testing.T) {
	env := newTestEnv(t)
	category := env.createCategory(t, "Phones")

	cases := []struct {
		name    string
		product model.Product
	}{
		{"missing name", model.Product{SKU: "S", Unit: "pcs", CategoryID: category.ID}},
		{"missing sku", model.Product{Name: "N", Unit: "pcs", CategoryID: category.ID}},
		{"missing unit", model.Product{Name: "N", SKU: "S", CategoryID: category.ID}},
		{"missing category", model.Product{Name: "N", SKU: "S", Unit: "pcs"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := env.catalog.CreateProduct(&tc.product, "tester")
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	env := newTestEnv(t)

	err := env.catalog.CreateProduct(&model.Product{
		Name:       "Handset",
		SKU:        "H-1",
		Unit:       "pcs",
		CategoryID: uuid.New(),
	}, "tester")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateProductDuplicateGuards(t *testing.T) {
	env := newTestEnv(t)
	original := env.createProduct(t, "Widget", "W-1")

	err := env.catalog.CreateProduct(&model.Product{
		Name:       "Other name",
		SKU:        "W-1",
		Unit:       "pcs",
		CategoryID: original.CategoryID,
	}, "tester")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Contains(t, err.Error(), "SKU")

	err = env.catalog.CreateProduct(&model.Product{
		Name:       "Widget",
		SKU:        "W-2",
		Unit:       "pcs",
		CategoryID: original.CategoryID,
	}, "tester")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// The original is untouched.
	fresh := env.reloadProduct(t, original)
	assert.Equal(t, "Widget", fresh.Name)
	assert.Equal(t, "W-1", fresh.SKU)
}

func TestUpdateProductIgnoresStockAndCost(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Widget", "W-1")
	env.stockProduct(t, product, 10, 50)

	updated, err := env.catalog.UpdateProduct(product.ID, &model.Product{
		Name:          "Widget v2",
		SalePrice:     75,
		MinimumStock:  5,
		StockQuantity: 1000,
		CostPrice:     1,
	}, "tester")
	require.NoError(t, err)

	assert.Equal(t, "Widget v2", updated.Name)
	assert.InDelta(t, 75, updated.SalePrice, 1e-9)
	assert.Equal(t, 5, updated.MinimumStock)
	// Ledger-owned fields kept their values.
	assert.Equal(t, 10, updated.StockQuantity)
	assert.InDelta(t, 50, updated.CostPrice, 1e-9)
}

func TestUpdateProductUniquenessExcludesSelf(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Widget", "W-1")
	other := env.createProduct(t, "Gadget", "G-1")

	// Re-submitting a product's own name and SKU is not a conflict.
	_, err := env.catalog.UpdateProduct(product.ID, &model.Product{
		Name: "Widget",
		SKU:  "W-1",
	}, "tester")
	require.NoError(t, err)

	// Taking another product's SKU is.
	_, err = env.catalog.UpdateProduct(product.ID, &model.Product{SKU: other.SKU}, "tester")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.UpdateProduct(uuid.New(), &model.Product{Name: "X"}, "tester")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteProductBlockedWhileStocked(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Widget", "W-1")
	env.stockProduct(t, product, 3, 10)

	err := env.catalog.DeleteProduct(product.ID, "tester")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// Still there.
	fresh := env.reloadProduct(t, product)
	assert.Equal(t, 3, fresh.StockQuantity)
}

func TestDeleteProductAtZeroStock(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "Widget", "W-1")

	require.NoError(t, env.catalog.DeleteProduct(product.ID, "tester"))

	_, err := env.productRepo.FindByID(product.ID)
	require.Error(t, err)
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct(t, "Widget", "W-1")
	env.createProduct(t, "Gadget", "G-1")

	products, err := env.catalog.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	// Category display data comes joined in.
	for _, p := range products {
		require.NotNil(t, p.Category)
		assert.NotEmpty(t, p.Category.Name)
	}
}
