package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para registrar un producto.
type CreateProductRequest struct {
	Code           string          `json:"code" validate:"required,max=50"`
	Description    string          `json:"description" validate:"required,max=200"`
	Unit           string          `json:"unit" validate:"required"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	MinimumStock   decimal.Decimal `json:"minimum_stock"`
	InitialStock   decimal.Decimal `json:"initial_stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	MinimumStock   decimal.Decimal `json:"minimum_stock"`
	InitialStock   decimal.Decimal `json:"initial_stock"`
}

// CatalogResponse listas fijas para formularios.
type CatalogResponse struct {
	Units             []string `json:"units"`
	PaymentMethods    []string `json:"payment_methods"`
	ExpenseCategories []string `json:"expense_categories"`
}
