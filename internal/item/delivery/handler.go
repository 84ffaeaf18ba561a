package delivery

import (
	"errors"
	"net/http"

	itemdomain "homehub-backend/internal/item/domain"
	"homehub-backend/internal/item/usecase"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles pantry item HTTP requests
type ItemHandler struct {
	itemUsecase usecase.ItemUsecase
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemUsecase usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{itemUsecase: itemUsecase}
}

// GetItems returns every pantry item
// GET /items
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.itemUsecase.GetItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID returns a single item
// GET /items/:id
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	id := c.Param("id")

	item, err := h.itemUsecase.GetItemByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Failed to find item: ID " + id})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem creates a new pantry item
// POST /items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var item itemdomain.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.itemUsecase.CreateItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create new item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem replaces an item's fields
// PUT /items/:id
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id := c.Param("id")

	var item itemdomain.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.itemUsecase.UpdateItem(id, &item)
	if err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Failed to find item: ID " + id})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating item"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteItem removes an item
// DELETE /items/:id
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id := c.Param("id")

	if err := h.itemUsecase.DeleteItem(id); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Failed to find item: ID " + id})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting item"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Removed item: ID " + id})
}
