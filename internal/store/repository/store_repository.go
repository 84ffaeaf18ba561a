package repository

import (
	"errors"
	"time"

	storedomain "homehub-backend/internal/store/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *storedomain.Store) error
	FindAll() ([]*storedomain.Store, error)
	FindByID(id string) (*storedomain.Store, error)
	Update(store *storedomain.Store) error
	Delete(id string) (bool, error)
}

// storeRepository implements StoreRepository using GORM
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new GORM-based StoreRepository
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *storedomain.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	store.CreatedAt = time.Now()
	store.UpdatedAt = time.Now()
	return r.db.Create(store).Error
}

func (r *storeRepository) FindAll() ([]*storedomain.Store, error) {
	var stores []*storedomain.Store
	err := r.db.Find(&stores).Error
	return stores, err
}

func (r *storeRepository) FindByID(id string) (*storedomain.Store, error) {
	var store storedomain.Store
	err := r.db.Where("id = ?", id).First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) Update(store *storedomain.Store) error {
	store.UpdatedAt = time.Now()
	return r.db.Save(store).Error
}

func (r *storeRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&storedomain.Store{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
