package delivery

import (
	"errors"
	"net/http"

	authdelivery "homehub-backend/internal/auth/delivery"
	budgetdomain "homehub-backend/internal/budget/domain"
	"homehub-backend/internal/budget/usecase"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetUsecase usecase.BudgetUsecase
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetUsecase usecase.BudgetUsecase) *BudgetHandler {
	return &BudgetHandler{budgetUsecase: budgetUsecase}
}

// GetBudgets returns the authenticated user's budgets
// GET /budgets
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	owner := c.GetString(authdelivery.CtxUserID)

	budgets, err := h.budgetUsecase.GetBudgets(owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching budgets"})
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// GetBudgetByID returns a single budget
// GET /budgets/:id
func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
	id := c.Param("id")

	budget, err := h.budgetUsecase.GetBudgetByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrBudgetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Budget with ID " + id + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching budget"})
		return
	}
	c.JSON(http.StatusOK, budget)
}

// CreateBudget creates a budget owned by the authenticated user
// POST /budgets
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	owner := c.GetString(authdelivery.CtxUserID)

	var budget budgetdomain.Budget
	if err := c.ShouldBindJSON(&budget); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.budgetUsecase.CreateBudget(owner, &budget); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create budget"})
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// UpdateBudget replaces a budget's fields
// PUT /budgets/:id
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id := c.Param("id")

	var budget budgetdomain.Budget
	if err := c.ShouldBindJSON(&budget); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.budgetUsecase.UpdateBudget(id, &budget)
	if err != nil {
		if errors.Is(err, usecase.ErrBudgetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Budget with ID " + id + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating budget"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBudget removes a budget
// DELETE /budgets/:id
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id := c.Param("id")

	if err := h.budgetUsecase.DeleteBudget(id); err != nil {
		if errors.Is(err, usecase.ErrBudgetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Budget with ID " + id + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting budget"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Removed budget: ID " + id})
}
