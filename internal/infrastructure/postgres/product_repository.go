package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productsTable = "products"

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
		Code:           r.Code,
		Description:    r.Description,
		Unit:           r.Unit,
		SuggestedPrice: r.SuggestedPrice,
		MinimumStock:   r.MinimumStock,
		InitialStock:   r.InitialStock,
	}
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	sql, args, err := builder().Insert(productsTable).Columns(productCols...).
		Values(p.Code, p.Description, p.Unit, p.SuggestedPrice, p.MinimumStock, p.InitialStock).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	sql, args, err := builder().Select(productCols...).From(productsTable).
		Where("code = ?", code).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p := row.toEntity()
	return &p, nil
}

// List devuelve el catálogo ordenado por código.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	sql, args, err := builder().Select(productCols...).From(productsTable).OrderBy("code").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	var rows []productRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// DeleteByCode elimina un producto. Los movimientos que lo referencian se conservan.
func (r *ProductRepo) DeleteByCode(ctx context.Context, code string) error {
	sql, args, err := builder().Delete(productsTable).Where("code = ?", code).ToSql()
	if err != nil {
		return fmt.Errorf("build delete product: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
