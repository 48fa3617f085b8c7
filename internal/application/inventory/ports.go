package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockAlertEvent se emite cuando una venta deja el producto en o por debajo del mínimo.
type StockAlertEvent struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	Message      string          `json:"message"`
	TriggeredBy  string          `json:"triggered_by"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// AlertPublisher publica alertas de stock fuera del proceso (broker).
type AlertPublisher interface {
	PublishStockAlert(ctx context.Context, event StockAlertEvent) error
}
