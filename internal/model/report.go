package model

// InventoryValueReport totals the value of everything currently on hand.
type InventoryValueReport struct {
	TotalProducts       int64   `json:"totalProducts"`
	TotalInventoryValue float64 `json:"totalInventoryValue"`
}

// TransactionSummaryReport totals in/out transaction value over a period.
type TransactionSummaryReport struct {
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	TotalInValue  float64 `json:"totalInValue"`
	TotalOutValue float64 `json:"totalOutValue"`
}

// StockMovementData is one day's aggregate movement for the chart feed.
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}
