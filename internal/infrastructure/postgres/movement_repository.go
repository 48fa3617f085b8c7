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

var (
	_ repository.EntryRepository = (*EntryRepo)(nil)
	_ repository.ExitRepository  = (*ExitRepo)(nil)
)

var entryCols = []string{
	"date", "product_code", "description", "unit", "quantity", "supplier",
	"unit_cost", "total_cost", "invoice_ref", "payment_method", "notes", "recorded_by",
}

var exitCols = []string{
	"date", "product_code", "description", "unit", "quantity", "customer",
	"unit_price", "total_sale", "invoice_ref", "payment_method", "notes", "recorded_by",
}

type entryRow struct {
	ID            int64           `db:"id"`
	Date          time.Time       `db:"date"`
	ProductCode   string          `db:"product_code"`
	Description   string          `db:"description"`
	Unit          string          `db:"unit"`
	Quantity      decimal.Decimal `db:"quantity"`
	Supplier      string          `db:"supplier"`
	UnitCost      decimal.Decimal `db:"unit_cost"`
	TotalCost     decimal.Decimal `db:"total_cost"`
	InvoiceRef    string          `db:"invoice_ref"`
	PaymentMethod string          `db:"payment_method"`
	Notes         string          `db:"notes"`
	RecordedBy    string          `db:"recorded_by"`
	RecordedAt    time.Time       `db:"recorded_at"`
}

func (r entryRow) toEntity() entity.Entry {
	return entity.Entry{
		ID: r.ID, Date: r.Date, ProductCode: r.ProductCode, Description: r.Description, Unit: r.Unit,
		Quantity: r.Quantity, Supplier: r.Supplier, UnitCost: r.UnitCost, TotalCost: r.TotalCost,
		InvoiceRef: r.InvoiceRef, PaymentMethod: r.PaymentMethod, Notes: r.Notes,
		RecordedBy: r.RecordedBy, RecordedAt: r.RecordedAt,
	}
}

type exitRow struct {
	ID            int64           `db:"id"`
	Date          time.Time       `db:"date"`
	ProductCode   string          `db:"product_code"`
	Description   string          `db:"description"`
	Unit          string          `db:"unit"`
	Quantity      decimal.Decimal `db:"quantity"`
	Customer      string          `db:"customer"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	TotalSale     decimal.Decimal `db:"total_sale"`
	InvoiceRef    string          `db:"invoice_ref"`
	PaymentMethod string          `db:"payment_method"`
	Notes         string          `db:"notes"`
	RecordedBy    string          `db:"recorded_by"`
	RecordedAt    time.Time       `db:"recorded_at"`
}

func (r exitRow) toEntity() entity.Exit {
	return entity.Exit{
		ID: r.ID, Date: r.Date, ProductCode: r.ProductCode, Description: r.Description, Unit: r.Unit,
		Quantity: r.Quantity, Customer: r.Customer, UnitPrice: r.UnitPrice, TotalSale: r.TotalSale,
		InvoiceRef: r.InvoiceRef, PaymentMethod: r.PaymentMethod, Notes: r.Notes,
		RecordedBy: r.RecordedBy, RecordedAt: r.RecordedAt,
	}
}

// EntryRepo entradas (compras) sobre PostgreSQL.
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador de entradas.
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create inserta la entrada y completa ID y RecordedAt.
func (r *EntryRepo) Create(ctx context.Context, e *entity.Entry) error {
	sql, args, err := builder().Insert("entries").Columns(entryCols...).
		Values(e.Date, e.ProductCode, e.Description, e.Unit, e.Quantity, e.Supplier,
			e.UnitCost, e.TotalCost, e.InvoiceRef, e.PaymentMethod, e.Notes, e.RecordedBy).
		Suffix("RETURNING id, recorded_at").ToSql()
	if err != nil {
		return fmt.Errorf("build insert entry: %w", err)
	}
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.RecordedAt); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// List devuelve todas las entradas, la más reciente primero.
func (r *EntryRepo) List(ctx context.Context) ([]entity.Entry, error) {
	sql, args, err := builder().Select(append([]string{"id"}, append(entryCols, "recorded_at")...)...).
		From("entries").OrderBy("date DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries: %w", err)
	}
	var rows []entryRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out := make([]entity.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Delete elimina una entrada por ID. Un ID inexistente no es error.
func (r *EntryRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "entries", id)
}

// ExitRepo salidas (ventas) sobre PostgreSQL.
type ExitRepo struct {
	q Querier
}

// NewExitRepository construye el adaptador de salidas.
func NewExitRepository(q Querier) *ExitRepo {
	return &ExitRepo{q: q}
}

func (r *ExitRepo) Create(ctx context.Context, x *entity.Exit) error {
	sql, args, err := builder().Insert("exits").Columns(exitCols...).
		Values(x.Date, x.ProductCode, x.Description, x.Unit, x.Quantity, x.Customer,
			x.UnitPrice, x.TotalSale, x.InvoiceRef, x.PaymentMethod, x.Notes, x.RecordedBy).
		Suffix("RETURNING id, recorded_at").ToSql()
	if err != nil {
		return fmt.Errorf("build insert exit: %w", err)
	}
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&x.ID, &x.RecordedAt); err != nil {
		return fmt.Errorf("insert exit: %w", err)
	}
	return nil
}

func (r *ExitRepo) List(ctx context.Context) ([]entity.Exit, error) {
	sql, args, err := builder().Select(append([]string{"id"}, append(exitCols, "recorded_at")...)...).
		From("exits").OrderBy("date DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list exits: %w", err)
	}
	var rows []exitRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list exits: %w", err)
	}
	out := make([]entity.Exit, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *ExitRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "exits", id)
}

func deleteByID(ctx context.Context, q Querier, table string, id int64) error {
	sql, args, err := builder().Delete(table).Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}
