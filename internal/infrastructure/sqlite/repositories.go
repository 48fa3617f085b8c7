package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/shopspring/decimal"

	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.EntryRepository   = (*EntryRepo)(nil)
	_ repository.ExitRepository    = (*ExitRepo)(nil)
	_ repository.ExpenseRepository = (*ExpenseRepo)(nil)
	_ repository.UserRepository    = (*UserRepo)(nil)
)

// ─── Productos ────────────────────────────────────────────────────────────────

var productCols = []string{"code", "description", "unit", "suggested_price", "minimum_stock", "initial_stock"}

type productRow struct {
	Code           string          `db:"code"`
	Description    string          `db:"description"`
	Unit           string          `db:"unit"`
	SuggestedPrice decimal.Decimal `db:"suggested_price"`
	MinimumStock   decimal.Decimal `db:"minimum_stock"`
	InitialStock   decimal.Decimal `db:"initial_stock"`
}

func (r productRow) toEntity() entity.Product {
	return entity.Product{
		Code: r.Code, Description: r.Description, Unit: r.Unit,
		SuggestedPrice: r.SuggestedPrice, MinimumStock: r.MinimumStock, InitialStock: r.InitialStock,
	}
}

type ProductRepo struct {
	db *sql.DB
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := insert(ctx, r.db, builder().Insert("products").Columns(productCols...).
		Values(p.Code, p.Description, p.Unit, p.SuggestedPrice, p.MinimumStock, p.InitialStock))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	query, args, err := builder().Select(productCols...).From("products").
		Where(squirrel.Eq{"code": code}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}
	var row productRow
	if err := sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p := row.toEntity()
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	query, args, err := builder().Select(productCols...).From("products").OrderBy("code").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	var rows []productRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *ProductRepo) DeleteByCode(ctx context.Context, code string) error {
	query, args, err := builder().Delete("products").Where(squirrel.Eq{"code": code}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete product: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ─── Entradas ─────────────────────────────────────────────────────────────────

var entryCols = []string{
	"date", "product_code", "description", "unit", "quantity", "supplier",
	"unit_cost", "total_cost", "invoice_ref", "payment_method", "notes", "recorded_by", "recorded_at",
}

type entryRow struct {
	ID            int64           `db:"id"`
	Date          string          `db:"date"`
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
	RecordedAt    string          `db:"recorded_at"`
}

type EntryRepo struct {
	db *sql.DB
}

func (r *EntryRepo) Create(ctx context.Context, e *entity.Entry) error {
	now := time.Now().UTC()
	id, err := insert(ctx, r.db, builder().Insert("entries").Columns(entryCols...).
		Values(formatDate(e.Date), e.ProductCode, e.Description, e.Unit, e.Quantity, e.Supplier,
			e.UnitCost, e.TotalCost, e.InvoiceRef, e.PaymentMethod, e.Notes, e.RecordedBy,
			now.Format(stampLayout)))
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	e.ID, e.RecordedAt = id, now
	return nil
}

func (r *EntryRepo) List(ctx context.Context) ([]entity.Entry, error) {
	query, args, err := builder().Select(append([]string{"id"}, entryCols...)...).From("entries").
		OrderBy("date DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries: %w", err)
	}
	var rows []entryRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out := make([]entity.Entry, 0, len(rows))
	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", row.ID, err)
		}
		out = append(out, entity.Entry{
			ID: row.ID, Date: date, ProductCode: row.ProductCode, Description: row.Description,
			Unit: row.Unit, Quantity: row.Quantity, Supplier: row.Supplier, UnitCost: row.UnitCost,
			TotalCost: row.TotalCost, InvoiceRef: row.InvoiceRef, PaymentMethod: row.PaymentMethod,
			Notes: row.Notes, RecordedBy: row.RecordedBy, RecordedAt: parseStamp(row.RecordedAt),
		})
	}
	return out, nil
}

func (r *EntryRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "entries", id)
}

// ─── Salidas ──────────────────────────────────────────────────────────────────

var exitCols = []string{
	"date", "product_code", "description", "unit", "quantity", "customer",
	"unit_price", "total_sale", "invoice_ref", "payment_method", "notes", "recorded_by", "recorded_at",
}

type exitRow struct {
	ID            int64           `db:"id"`
	Date          string          `db:"date"`
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
	RecordedAt    string          `db:"recorded_at"`
}

type ExitRepo struct {
	db *sql.DB
}

func (r *ExitRepo) Create(ctx context.Context, x *entity.Exit) error {
	now := time.Now().UTC()
	id, err := insert(ctx, r.db, builder().Insert("exits").Columns(exitCols...).
		Values(formatDate(x.Date), x.ProductCode, x.Description, x.Unit, x.Quantity, x.Customer,
			x.UnitPrice, x.TotalSale, x.InvoiceRef, x.PaymentMethod, x.Notes, x.RecordedBy,
			now.Format(stampLayout)))
	if err != nil {
		return fmt.Errorf("insert exit: %w", err)
	}
	x.ID, x.RecordedAt = id, now
	return nil
}

func (r *ExitRepo) List(ctx context.Context) ([]entity.Exit, error) {
	query, args, err := builder().Select(append([]string{"id"}, exitCols...)...).From("exits").
		OrderBy("date DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list exits: %w", err)
	}
	var rows []exitRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list exits: %w", err)
	}
	out := make([]entity.Exit, 0, len(rows))
	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("exit %d: %w", row.ID, err)
		}
		out = append(out, entity.Exit{
			ID: row.ID, Date: date, ProductCode: row.ProductCode, Description: row.Description,
			Unit: row.Unit, Quantity: row.Quantity, Customer: row.Customer, UnitPrice: row.UnitPrice,
			TotalSale: row.TotalSale, InvoiceRef: row.InvoiceRef, PaymentMethod: row.PaymentMethod,
			Notes: row.Notes, RecordedBy: row.RecordedBy, RecordedAt: parseStamp(row.RecordedAt),
		})
	}
	return out, nil
}

func (r *ExitRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "exits", id)
}

// ─── Gastos ───────────────────────────────────────────────────────────────────

var expenseCols = []string{
	"date", "category", "description", "beneficiary", "amount", "payment_method", "notes", "recorded_by", "recorded_at",
}

type expenseRow struct {
	ID            int64           `db:"id"`
	Date          string          `db:"date"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Beneficiary   string          `db:"beneficiary"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Notes         string          `db:"notes"`
	RecordedBy    string          `db:"recorded_by"`
	RecordedAt    string          `db:"recorded_at"`
}

type ExpenseRepo struct {
	db *sql.DB
}

func (r *ExpenseRepo) Create(ctx context.Context, g *entity.Expense) error {
	now := time.Now().UTC()
	id, err := insert(ctx, r.db, builder().Insert("expenses").Columns(expenseCols...).
		Values(formatDate(g.Date), g.Category, g.Description, g.Beneficiary, g.Amount,
			g.PaymentMethod, g.Notes, g.RecordedBy, now.Format(stampLayout)))
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	g.ID, g.RecordedAt = id, now
	return nil
}

func (r *ExpenseRepo) List(ctx context.Context) ([]entity.Expense, error) {
	query, args, err := builder().Select(append([]string{"id"}, expenseCols...)...).From("expenses").
		OrderBy("date DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list expenses: %w", err)
	}
	var rows []expenseRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	out := make([]entity.Expense, 0, len(rows))
	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", row.ID, err)
		}
		out = append(out, entity.Expense{
			ID: row.ID, Date: date, Category: row.Category, Description: row.Description,
			Beneficiary: row.Beneficiary, Amount: row.Amount, PaymentMethod: row.PaymentMethod,
			Notes: row.Notes, RecordedBy: row.RecordedBy, RecordedAt: parseStamp(row.RecordedAt),
		})
	}
	return out, nil
}

func (r *ExpenseRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "expenses", id)
}

// ─── Usuarios ─────────────────────────────────────────────────────────────────

type UserRepo struct {
	db *sql.DB
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	now := time.Now().UTC()
	id, err := insert(ctx, r.db, builder().Insert("users").
		Columns("username", "password_hash", "display_name", "created_at").
		Values(u.Username, u.PasswordHash, u.DisplayName, now.Format(stampLayout)))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID, u.CreatedAt = id, now
	return nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var row struct {
		ID           int64  `db:"id"`
		Username     string `db:"username"`
		PasswordHash string `db:"password_hash"`
		DisplayName  string `db:"display_name"`
		CreatedAt    string `db:"created_at"`
	}
	query, args, err := builder().Select("id", "username", "password_hash", "display_name", "created_at").
		From("users").Where(squirrel.Eq{"username": username}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}
	if err := sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &entity.User{
		ID: row.ID, Username: row.Username, PasswordHash: row.PasswordHash,
		DisplayName: row.DisplayName, CreatedAt: parseStamp(row.CreatedAt),
	}, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
