package repository

import (
	"time"

	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	// Create runs inside the caller's DB transaction; the ledger row only
	// commits together with the product mutation.
	Create(tx *gorm.DB, transaction *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	SumValueByType(txType model.TransactionType, startDate, endDate time.Time) (float64, error)
	GetStockMovement(startDate, endDate time.Time) ([]model.StockMovementData, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Product").Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

// SumValueByType totals quantity * price over transactions of one type in
// [startDate, endDate] inclusive.
func (r *transactionRepo) SumValueByType(txType model.TransactionType, startDate, endDate time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&model.Transaction{}).
		Where("type = ? AND created_at BETWEEN ? AND ?", txType, startDate, endDate).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&total).Error
	return total, err
}

// GetStockMovement aggregates in/out quantities per day for the chart feed.
func (r *transactionRepo) GetStockMovement(startDate, endDate time.Time) ([]model.StockMovementData, error) {
	var results []model.StockMovementData

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN type = 'in' THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN type = 'out' THEN quantity ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data model.StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}
