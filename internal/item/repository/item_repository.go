package repository

import (
	"errors"
	"time"

	itemdomain "homehub-backend/internal/item/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *itemdomain.Item) error
	FindAll() ([]*itemdomain.Item, error)
	FindByID(id string) (*itemdomain.Item, error)
	Update(item *itemdomain.Item) error
	Delete(id string) (bool, error)
}

// itemRepository implements ItemRepository using GORM
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new GORM-based ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *itemdomain.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *itemRepository) FindAll() ([]*itemdomain.Item, error) {
	var items []*itemdomain.Item
	err := r.db.Find(&items).Error
	return items, err
}

func (r *itemRepository) FindByID(id string) (*itemdomain.Item, error) {
	var item itemdomain.Item
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(item *itemdomain.Item) error {
	item.UpdatedAt = time.Now()
	return r.db.Save(item).Error
}

func (r *itemRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&itemdomain.Item{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
