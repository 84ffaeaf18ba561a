package usecase

import (
	"errors"

	budgetdomain "homehub-backend/internal/budget/domain"
	"homehub-backend/internal/budget/repository"
)

var ErrBudgetNotFound = errors.New("budget not found")

// BudgetUsecase defines the budget business logic contract
type BudgetUsecase interface {
	CreateBudget(owner string, budget *budgetdomain.Budget) error
	GetBudgets(owner string) ([]*budgetdomain.Budget, error)
	GetBudgetByID(id string) (*budgetdomain.Budget, error)
	UpdateBudget(id string, budget *budgetdomain.Budget) (*budgetdomain.Budget, error)
	DeleteBudget(id string) error
}

type budgetUsecase struct {
	budgetRepo repository.BudgetRepository
}

// NewBudgetUsecase creates a new instance of budgetUsecase
func NewBudgetUsecase(budgetRepo repository.BudgetRepository) BudgetUsecase {
	return &budgetUsecase{budgetRepo: budgetRepo}
}

func (u *budgetUsecase) CreateBudget(owner string, budget *budgetdomain.Budget) error {
	budget.Owner = owner
	return u.budgetRepo.Create(budget)
}

func (u *budgetUsecase) GetBudgets(owner string) ([]*budgetdomain.Budget, error) {
	return u.budgetRepo.FindByOwner(owner)
}

func (u *budgetUsecase) GetBudgetByID(id string) (*budgetdomain.Budget, error) {
	budget, err := u.budgetRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, ErrBudgetNotFound
	}
	return budget, nil
}

func (u *budgetUsecase) UpdateBudget(id string, budget *budgetdomain.Budget) (*budgetdomain.Budget, error) {
	existing, err := u.budgetRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBudgetNotFound
	}

	budget.ID = existing.ID
	budget.Owner = existing.Owner
	budget.CreatedAt = existing.CreatedAt
	if err := u.budgetRepo.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (u *budgetUsecase) DeleteBudget(id string) error {
	deleted, err := u.budgetRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}
