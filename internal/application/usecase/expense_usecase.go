package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mluiza/controle-materiais/internal/application/dto"
	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/inventory"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

// ExpenseUseCase registro de gastos operativos.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
	now  func() time.Time
}

func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, now: time.Now}
}

// Create registra el gasto a nombre de user. Fecha vacía significa hoy.
func (uc *ExpenseUseCase) Create(ctx context.Context, user string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := dto.ParseDate(in.Date, inventory.DateOnly(uc.now()))
	if err != nil {
		return nil, err
	}
	if !entity.IsValidExpenseCategory(in.Category) || !entity.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	expense := &entity.Expense{
		Date:          date,
		Category:      in.Category,
		Description:   strings.TrimSpace(in.Description),
		Beneficiary:   strings.TrimSpace(in.Beneficiary),
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Notes:         strings.TrimSpace(in.Notes),
		RecordedBy:    user,
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	out := dto.FromExpense(*expense)
	return &out, nil
}

// List todos los gastos, el más reciente primero.
func (uc *ExpenseUseCase) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, g := range expenses {
		out = append(out, dto.FromExpense(g))
	}
	return out, nil
}

func (uc *ExpenseUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}
