package service

import (
	"errors"
	"fmt"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordTransactionInput is the validated shape of a ledger append.
type RecordTransactionInput struct {
	ProductID uuid.UUID
	Type      model.TransactionType
	Quantity  int
	Notes     string
	// CostPrice is the unit cost of the incoming goods; required for
	// inbound movements, ignored for outbound.
	CostPrice float64
}

type InventoryService interface {
	RecordTransaction(input RecordTransactionInput, actor string) (*model.Transaction, error)
	ListTransactions() ([]model.TransactionResponse, error)
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	hub             *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
		hub:             hub,
	}
}

// RecordTransaction appends one stock movement. The product mutation and the
// ledger row are committed in a single DB transaction: a rejected movement
// leaves no trace, and a committed one always has both writes.
func (s *inventoryService) RecordTransaction(input RecordTransactionInput, actor string) (*model.Transaction, error) {
	if input.ProductID == uuid.Nil {
		return nil, apperr.Validation("Product id is required")
	}
	if input.Quantity <= 0 {
		return nil, apperr.Validation("Quantity must be greater than 0")
	}
	if input.Type != model.TxIn && input.Type != model.TxOut {
		return nil, apperr.Validation(`Transaction type must be "in" or "out"`)
	}
	if input.Type == model.TxIn && input.CostPrice <= 0 {
		return nil, apperr.Validation("Inbound transactions require a cost price greater than 0")
	}

	var entry *model.Transaction
	var newStock int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDTx(tx, input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Product not found")
			}
			return err
		}

		switch input.Type {
		case model.TxOut:
			// Conditional decrement: the guard in the WHERE clause keeps
			// stock non-negative even when requests race.
			ok, err := s.productRepo.DecreaseStock(tx, product.ID, input.Quantity, actor)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.InsufficientStock(product.StockQuantity)
			}
		case model.TxIn:
			if err := s.productRepo.IncreaseStock(tx, product.ID, input.Quantity, input.CostPrice, actor); err != nil {
				return err
			}
		}

		// Re-read inside the tx: inbound needs the freshly computed average
		// for the ledger price; outbound keeps the pre-movement cost basis.
		updated, err := s.productRepo.FindByIDTx(tx, product.ID)
		if err != nil {
			return err
		}
		newStock = updated.StockQuantity

		price := product.CostPrice
		if input.Type == model.TxIn {
			price = updated.CostPrice
		}

		entry = &model.Transaction{
			ProductID: product.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Price:     price,
			Notes:     input.Notes,
		}
		entry.CreatedBy = actor
		entry.UpdatedBy = actor

		return s.transactionRepo.Create(tx, entry)
	})

	if err != nil {
		return nil, err
	}

	s.hub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "transaction_created",
		"transaction": map[string]interface{}{
			"id":        entry.ID,
			"type":      entry.Type,
			"quantity":  entry.Quantity,
			"productId": entry.ProductID,
			"newStock":  newStock,
		},
		"message": fmt.Sprintf("%s recorded an %q movement of %d units", actor, entry.Type, entry.Quantity),
	})

	return entry, nil
}

// ListTransactions returns the ledger newest-first, each entry annotated
// with the current display data of its product.
func (s *inventoryService) ListTransactions() ([]model.TransactionResponse, error) {
	transactions, err := s.transactionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = transactions[i].ToResponse()
	}
	return responses, nil
}
