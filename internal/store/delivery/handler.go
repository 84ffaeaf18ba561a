package delivery

import (
	"errors"
	"net/http"

	storedomain "homehub-backend/internal/store/domain"
	"homehub-backend/internal/store/usecase"

	"github.com/gin-gonic/gin"
)

// StoreHandler handles grocery store HTTP requests
type StoreHandler struct {
	storeUsecase usecase.StoreUsecase
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeUsecase usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{storeUsecase: storeUsecase}
}

// GetStores returns every registered store
// GET /stores/all
func (h *StoreHandler) GetStores(c *gin.Context) {
	stores, err := h.storeUsecase.GetStores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching stores"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

// GetStoreByID returns a single store
// GET /stores/:id
func (h *StoreHandler) GetStoreByID(c *gin.Context) {
	id := c.Param("id")

	store, err := h.storeUsecase.GetStoreByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Failed to find store: ID " + id})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching store"})
		return
	}
	c.JSON(http.StatusOK, store)
}

// CreateStore registers a new store
// POST /stores/new
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var store storedomain.Store
	if err := c.ShouldBindJSON(&store); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.storeUsecase.CreateStore(&store); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create new store"})
		return
	}
	c.JSON(http.StatusCreated, store)
}

// UpdateStore replaces a store's fields
// PUT /stores/:id
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id := c.Param("id")

	var store storedomain.Store
	if err := c.ShouldBindJSON(&store); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.storeUsecase.UpdateStore(id, &store)
	if err != nil {
		if errors.Is(err, usecase.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Failed to find store: ID " + id})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating store"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStore removes a store
// DELETE /stores/:id
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	id := c.Param("id")

	if err := h.storeUsecase.DeleteStore(id); err != nil {
		if errors.Is(err, usecase.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Failed to find store: ID " + id})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting store"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Removed store: ID " + id})
}
