package repository

import (
	"context"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
)

// ExpenseRepository puerto de persistencia para gastos operativos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context) ([]entity.Expense, error)
	Delete(ctx context.Context, id int64) error
}
