package repository

import (
	"errors"
	"time"

	budgetdomain "homehub-backend/internal/budget/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BudgetRepository interface {
	Create(budget *budgetdomain.Budget) error
	FindByOwner(owner string) ([]*budgetdomain.Budget, error)
	FindByID(id string) (*budgetdomain.Budget, error)
	Update(budget *budgetdomain.Budget) error
	Delete(id string) (bool, error)
}

// budgetRepository implements BudgetRepository using GORM
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new GORM-based BudgetRepository
func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(budget *budgetdomain.Budget) error {
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	budget.CreatedAt = time.Now()
	budget.UpdatedAt = time.Now()
	return r.db.Create(budget).Error
}

func (r *budgetRepository) FindByOwner(owner string) ([]*budgetdomain.Budget, error) {
	var budgets []*budgetdomain.Budget
	err := r.db.Where("owner = ?", owner).Find(&budgets).Error
	return budgets, err
}

func (r *budgetRepository) FindByID(id string) (*budgetdomain.Budget, error) {
	var budget budgetdomain.Budget
	err := r.db.Where("id = ?", id).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepository) Update(budget *budgetdomain.Budget) error {
	budget.UpdatedAt = time.Now()
	return r.db.Save(budget).Error
}

func (r *budgetRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&budgetdomain.Budget{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
