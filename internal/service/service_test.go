package service

import (
	"testing"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires every service against a fresh in-memory database.
type testEnv struct {
	db *gorm.DB

	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	supplierRepo    repository.SupplierRepository
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository

	catalog    CatalogService
	categories CategoryService
	suppliers  SupplierService
	inventory  InventoryService
	auth       AuthService
	reports    ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Transaction{},
		&model.User{},
	))

	env := &testEnv{
		db:              db,
		productRepo:     repository.NewProductRepo(db),
		categoryRepo:    repository.NewCategoryRepo(db),
		supplierRepo:    repository.NewSupplierRepo(db),
		transactionRepo: repository.NewTransactionRepo(db),
		userRepo:        repository.NewUserRepo(db),
	}

	// A nil hub disables broadcasting; services must not care.
	env.catalog = NewCatalogService(env.productRepo, env.categoryRepo, env.supplierRepo, nil)
	env.categories = NewCategoryService(env.categoryRepo, env.productRepo)
	env.suppliers = NewSupplierService(env.supplierRepo)
	env.inventory = NewInventoryService(env.productRepo, env.transactionRepo, db, nil)
	env.auth = NewAuthService(env.userRepo)
	env.reports = NewReportService(env.productRepo, env.transactionRepo)

	return env
}

func (e *testEnv) createCategory(t *testing.T, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name}
	require.NoError(t, e.categories.Create(category, "tester"))
	return category
}

func (e *testEnv) createProduct(t *testing.T, name, sku string, opts ...func(*model.Product)) *model.Product {
	t.Helper()
	category := e.createCategory(t, "cat-for-"+sku)
	product := &model.Product{
		Name:       name,
		SKU:        sku,
		Unit:       "pcs",
		CategoryID: category.ID,
	}
	for _, opt := range opts {
		opt(product)
	}
	require.NoError(t, e.catalog.CreateProduct(product, "tester"))
	return product
}

// stockProduct runs an inbound movement so tests can start from a known
// stock level and cost basis.
func (e *testEnv) stockProduct(t *testing.T, product *model.Product, quantity int, unitCost float64) {
	t.Helper()
	_, err := e.inventory.RecordTransaction(RecordTransactionInput{
		ProductID: product.ID,
		Type:      model.TxIn,
		Quantity:  quantity,
		CostPrice: unitCost,
	}, "tester")
	require.NoError(t, err)
}

func (e *testEnv) reloadProduct(t *testing.T, product *model.Product) *model.Product {
	t.Helper()
	fresh, err := e.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	return fresh
}

func (e *testEnv) ledgerCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&model.Transaction{}).Count(&count).Error)
	return count
}
