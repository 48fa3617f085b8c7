package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

var expenseCols = []string{
	"date", "category", "description", "beneficiary", "amount", "payment_method", "notes", "recorded_by",
}

type expenseRow struct {
	ID            int64           `db:"id"`
	Date          time.Time       `db:"date"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Beneficiary   string          `db:"beneficiary"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Notes         string          `db:"notes"`
	RecordedBy    string          `db:"recorded_by"`
	RecordedAt    time.Time       `db:"recorded_at"`
}

// ExpenseRepo gastos operativos sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) Create(ctx context.Context, g *entity.Expense) error {
	sql, args, err := builder().Insert("expenses").Columns(expenseCols...).
		Values(g.Date, g.Category, g.Description, g.Beneficiary, g.Amount, g.PaymentMethod, g.Notes, g.RecordedBy).
		Suffix("RETURNING id, recorded_at").ToSql()
	if err != nil {
		return fmt.Errorf("build insert expense: %w", err)
	}
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&g.ID, &g.RecordedAt); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) List(ctx context.Context) ([]entity.Expense, error) {
	sql, args, err := builder().Select(append([]string{"id"}, append(expenseCols, "recorded_at")...)...).
		From("expenses").OrderBy("date DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list expenses: %w", err)
	}
	var rows []expenseRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	out := make([]entity.Expense, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.Expense{
			ID: row.ID, Date: row.Date, Category: row.Category, Description: row.Description,
			Beneficiary: row.Beneficiary, Amount: row.Amount, PaymentMethod: row.PaymentMethod,
			Notes: row.Notes, RecordedBy: row.RecordedBy, RecordedAt: row.RecordedAt,
		})
	}
	return out, nil
}

func (r *ExpenseRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "expenses", id)
}
