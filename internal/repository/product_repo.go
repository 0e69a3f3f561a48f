package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindDuplicate(name, sku string, excludeID uuid.UUID) (*model.Product, error)
	UpdateEditable(product *model.Product) error
	Delete(id uuid.UUID, deletedBy string) error
	CountByCategory(categoryID uuid.UUID) (int64, error)

	// Stock mutators run inside a caller-supplied DB transaction so the
	// product write and the ledger append commit together.
	DecreaseStock(tx *gorm.DB, id uuid.UUID, quantity int, updatedBy string) (bool, error)
	IncreaseStock(tx *gorm.DB, id uuid.UUID, quantity int, unitCost float64, updatedBy string) error
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error)

	// Report reads
	InventoryValue() (*model.InventoryValueReport, error)
	FindLowStock() ([]model.Product, error)
	FindOutOfStock() ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Preload("Supplier").
		Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Supplier").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindDuplicate returns another product holding the given name or SKU,
// excluding excludeID so updates don't collide with themselves.
func (r *productRepo) FindDuplicate(name, sku string, excludeID uuid.UUID) (*model.Product, error) {
	var product model.Product
	q := r.db.Where("name = ? OR sku = ?", name, sku)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateEditable persists only the user-editable columns. StockQuantity and
// CostPrice are owned by the transaction ledger and never written here.
func (r *productRepo) UpdateEditable(product *model.Product) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":          product.Name,
			"sku":           product.SKU,
			"description":   product.Description,
			"unit":          product.Unit,
			"sale_price":    product.SalePrice,
			"minimum_stock": product.MinimumStock,
			"category_id":   product.CategoryID,
			"supplier_id":   product.SupplierID,
			"updated_by":    product.UpdatedBy,
		}).Error
}

func (r *productRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Product{}).Where("id = ?", id).
		Update("updated_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) CountByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// DecreaseStock applies the outbound decrement conditionally: the row only
// changes when enough stock remains, so concurrent outbound requests cannot
// drive stock negative. Returns false when the guard rejected the update.
func (r *productRepo) DecreaseStock(tx *gorm.DB, id uuid.UUID, quantity int, updatedBy string) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"updated_by":     updatedBy,
		})
	return res.RowsAffected > 0, res.Error
}

// IncreaseStock adds inbound quantity and recomputes the moving weighted
// average cost in a single UPDATE, so both columns derive from the same
// stored row even under concurrent movements.
func (r *productRepo) IncreaseStock(tx *gorm.DB, id uuid.UUID, quantity int, unitCost float64, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"cost_price": gorm.Expr(
				"CASE WHEN stock_quantity > 0 THEN (stock_quantity * cost_price + ? * ?) / (stock_quantity + ?) ELSE ? END",
				quantity, unitCost, quantity, unitCost,
			),
			"stock_quantity": gorm.Expr("stock_quantity + ?", quantity),
			"updated_by":     updatedBy,
		}).Error
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) InventoryValue() (*model.InventoryValueReport, error) {
	var report model.InventoryValueReport
	err := r.db.Model(&model.Product{}).
		Where("stock_quantity > 0").
		Select("COUNT(*) as total_products, COALESCE(SUM(stock_quantity * cost_price), 0) as total_inventory_value").
		Scan(&report).Error
	return &report, err
}

func (r *productRepo) FindLowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("stock_quantity > 0 AND stock_quantity < minimum_stock").
		Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindOutOfStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("stock_quantity = 0").Order("name ASC").Find(&products).Error
	return products, err
}
