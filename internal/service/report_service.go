package service

import (
	"time"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
)

// ReportService derives read-only views from current product and transaction
// data. Nothing is cached: every call recomputes from the store.
type ReportService interface {
	InventoryValue() (*model.InventoryValueReport, error)
	LowStock() ([]model.Product, error)
	OutOfStock() ([]model.Product, error)
	TransactionSummary(startDate, endDate time.Time) (*model.TransactionSummaryReport, error)
	StockMovement(days int) ([]model.StockMovementData, error)
}

type reportService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
}

func NewReportService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository) ReportService {
	return &reportService{productRepo: pRepo, transactionRepo: tRepo}
}

func (s *reportService) InventoryValue() (*model.InventoryValueReport, error) {
	return s.productRepo.InventoryValue()
}

func (s *reportService) LowStock() ([]model.Product, error) {
	return s.productRepo.FindLowStock()
}

func (s *reportService) OutOfStock() ([]model.Product, error) {
	return s.productRepo.FindOutOfStock()
}

// TransactionSummary totals in/out value over [startDate, endDate] using
// inclusive calendar-day boundaries: endDate is pushed to the last instant
// of its day before querying.
func (s *reportService) TransactionSummary(startDate, endDate time.Time) (*model.TransactionSummaryReport, error) {
	end := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)

	inValue, err := s.transactionRepo.SumValueByType(model.TxIn, startDate, end)
	if err != nil {
		return nil, err
	}
	outValue, err := s.transactionRepo.SumValueByType(model.TxOut, startDate, end)
	if err != nil {
		return nil, err
	}

	return &model.TransactionSummaryReport{
		StartDate:     startDate.Format("2006-01-02"),
		EndDate:       endDate.Format("2006-01-02"),
		TotalInValue:  inValue,
		TotalOutValue: outValue,
	}, nil
}

func (s *reportService) StockMovement(days int) ([]model.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)
	return s.transactionRepo.GetStockMovement(startDate, endDate)
}
