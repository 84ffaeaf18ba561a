package delivery

import (
	"errors"
	"net/http"

	authdelivery "homehub-backend/internal/auth/delivery"
	recipedomain "homehub-backend/internal/recipe/domain"
	"homehub-backend/internal/recipe/usecase"

	"github.com/gin-gonic/gin"
)

// RecipeHandler handles recipe HTTP requests
type RecipeHandler struct {
	recipeUsecase usecase.RecipeUsecase
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeUsecase usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{recipeUsecase: recipeUsecase}
}

// GetRecipes returns every recipe
// GET /recipes
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	recipes, err := h.recipeUsecase.GetRecipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching recipes"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipeByID returns a single recipe
// GET /recipes/:id
func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	id := c.Param("id")

	recipe, err := h.recipeUsecase.GetRecipeByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe with ID " + id + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe creates a new recipe owned by the authenticated user
// POST /recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID := c.GetString(authdelivery.CtxUserID)

	var recipe recipedomain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.recipeUsecase.CreateRecipe(userID, &recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe replaces a recipe's fields
// PUT /recipes/:id
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")

	var recipe recipedomain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.recipeUsecase.UpdateRecipe(id, &recipe)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe with ID " + id + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating recipe"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRecipe removes a recipe
// DELETE /recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")

	if err := h.recipeUsecase.DeleteRecipe(id); err != nil {
		if errors.Is(err, usecase.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Recipe with ID " + id + " does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting recipe"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Removed recipe: ID " + id})
}
