package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo. Independiente del stock.
type Expense struct {
	ID            int64
	Date          time.Time
	Category      string
	Description   string
	Beneficiary   string
	Amount        decimal.Decimal
	PaymentMethod string
	Notes         string
	RecordedBy    string
	RecordedAt    time.Time
}
