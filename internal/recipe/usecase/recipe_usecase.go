package usecase

import (
	"errors"

	recipedomain "homehub-backend/internal/recipe/domain"
	"homehub-backend/internal/recipe/repository"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeUsecase defines the recipe business logic contract
type RecipeUsecase interface {
	CreateRecipe(userID string, recipe *recipedomain.Recipe) error
	GetRecipes() ([]*recipedomain.Recipe, error)
	GetRecipeByID(id string) (*recipedomain.Recipe, error)
	UpdateRecipe(id string, recipe *recipedomain.Recipe) (*recipedomain.Recipe, error)
	DeleteRecipe(id string) error
}

type recipeUsecase struct {
	recipeRepo repository.RecipeRepository
}

// NewRecipeUsecase creates a new instance of recipeUsecase
func NewRecipeUsecase(recipeRepo repository.RecipeRepository) RecipeUsecase {
	return &recipeUsecase{recipeRepo: recipeRepo}
}

func (u *recipeUsecase) CreateRecipe(userID string, recipe *recipedomain.Recipe) error {
	recipe.CreatedBy = userID
	return u.recipeRepo.Create(recipe)
}

func (u *recipeUsecase) GetRecipes() ([]*recipedomain.Recipe, error) {
	return u.recipeRepo.FindAll()
}

func (u *recipeUsecase) GetRecipeByID(id string) (*recipedomain.Recipe, error) {
	recipe, err := u.recipeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}

func (u *recipeUsecase) UpdateRecipe(id string, recipe *recipedomain.Recipe) (*recipedomain.Recipe, error) {
	existing, err := u.recipeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrRecipeNotFound
	}

	recipe.ID = existing.ID
	recipe.CreatedBy = existing.CreatedBy
	recipe.CreatedAt = existing.CreatedAt
	if err := u.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (u *recipeUsecase) DeleteRecipe(id string) error {
	deleted, err := u.recipeRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecipeNotFound
	}
	return nil
}
