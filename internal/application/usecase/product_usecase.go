package usecase

import (
	"context"
	"strings"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

// ProductUseCase alta, listado y baja de productos. El catálogo no tiene actualización.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto. Un código existente devuelve domain.ErrDuplicate sin modificar el catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Code:           strings.TrimSpace(in.Code),
		Description:    strings.TrimSpace(in.Description),
		Unit:           in.Unit,
		SuggestedPrice: in.SuggestedPrice,
		MinimumStock:   in.MinimumStock,
		InitialStock:   in.InitialStock,
	}
	if product.Code == "" || product.Description == "" || !entity.IsValidUnit(product.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if product.SuggestedPrice.IsNegative() || product.MinimumStock.IsNegative() || product.InitialStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(*product)
	return &out, nil
}

// List devuelve el catálogo ordenado por código.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.FromProduct(p))
	}
	return out, nil
}

// Delete elimina un producto por código. Sus movimientos quedan registrados.
func (uc *ProductUseCase) Delete(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByCode(ctx, code)
}

// Catalog listas fijas de unidades, formas de pago y categorías de gasto.
func Catalog() dto.CatalogResponse {
	return dto.CatalogResponse{
		Units:             entity.Units,
		PaymentMethods:    entity.PaymentMethods,
		ExpenseCategories: entity.ExpenseCategories,
	}
}
