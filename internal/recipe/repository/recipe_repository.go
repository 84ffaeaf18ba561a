package repository

import (
	"errors"
	"time"

	recipedomain "homehub-backend/internal/recipe/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *recipedomain.Recipe) error
	FindAll() ([]*recipedomain.Recipe, error)
	FindByID(id string) (*recipedomain.Recipe, error)
	Update(recipe *recipedomain.Recipe) error
	Delete(id string) (bool, error)
}

// recipeRepository implements RecipeRepository using GORM
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM-based RecipeRepository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(recipe *recipedomain.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = time.Now()
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) FindAll() ([]*recipedomain.Recipe, error) {
	var recipes []*recipedomain.Recipe
	err := r.db.Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) FindByID(id string) (*recipedomain.Recipe, error) {
	var recipe recipedomain.Recipe
	err := r.db.Where("id = ?", id).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Update(recipe *recipedomain.Recipe) error {
	recipe.UpdatedAt = time.Now()
	return r.db.Save(recipe).Error
}

func (r *recipeRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&recipedomain.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
