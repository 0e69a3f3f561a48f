package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxIn  TransactionType = "in"
	TxOut TransactionType = "out"
)

// DeletedProductLabel is shown on ledger entries whose product reference no
// longer resolves.
const DeletedProductLabel = "Deleted product"

// Transaction is an immutable ledger entry. A committed transaction is never
// updated or deleted; corrections are compensating entries of the opposite
// type.
type Transaction struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"-" validate:"-"`
	Type      TransactionType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=in out"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`

	// Price is the unit cost in effect for this movement: the freshly
	// computed average for inbound, the pre-movement cost for outbound.
	Price float64 `gorm:"not null" json:"price"`
	Notes string  `gorm:"type:text" json:"notes"`
}

// TransactionResponse is the ledger entry annotated with the current display
// data of its product for the listing endpoint.
type TransactionResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"productId"`
	ProductName   string          `json:"productName"`
	Unit          string          `json:"unit"`
	StockQuantity int             `json:"stockQuantity"`
	Type          TransactionType `json:"type"`
	Quantity      int             `json:"quantity"`
	Price         float64         `json:"price"`
	Notes         string          `json:"notes"`
	CreatedBy     string          `json:"createdBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToResponse annotates the entry with the product's current name, unit and
// stock level, or the deleted-product sentinel when the reference is gone.
func (t *Transaction) ToResponse() TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID,
		ProductID:   t.ProductID,
		ProductName: DeletedProductLabel,
		Type:        t.Type,
		Quantity:    t.Quantity,
		Price:       t.Price,
		Notes:       t.Notes,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}

	if t.Product != nil && t.Product.ID != uuid.Nil {
		resp.ProductName = t.Product.Name
		resp.Unit = t.Product.Unit
		resp.StockQuantity = t.Product.StockQuantity
	}

	return resp
}
