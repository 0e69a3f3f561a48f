package model

import "github.com/google/uuid"

// Product is the catalog entry. StockQuantity and CostPrice are owned by
// the transaction ledger: product create/update endpoints never touch them.
type Product struct {
	BaseModel
	SKU         string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Unit        string  `gorm:"type:varchar(20);not null" json:"unit" validate:"required"`
	CostPrice   float64 `gorm:"default:0" json:"costPrice" validate:"gte=0"`
	SalePrice   float64 `gorm:"default:0" json:"salePrice" validate:"gte=0"`

	// Stock starts at 0 and only moves through transactions.
	StockQuantity int `gorm:"default:0" json:"stockQuantity" validate:"gte=0"`
	MinimumStock  int `gorm:"default:0" json:"minimumStock" validate:"gte=0"`

	CategoryID uuid.UUID  `gorm:"type:uuid;not null;index" json:"categoryId" validate:"uuid_required"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplierId,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`

	Transactions []Transaction `json:"transactions,omitempty"`
}
