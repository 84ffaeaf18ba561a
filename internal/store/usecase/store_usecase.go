package usecase

import (
	"errors"

	storedomain "homehub-backend/internal/store/domain"
	"homehub-backend/internal/store/repository"
)

var ErrStoreNotFound = errors.New("store not found")

// StoreUsecase defines the store business logic contract
type StoreUsecase interface {
	CreateStore(store *storedomain.Store) error
	GetStores() ([]*storedomain.Store, error)
	GetStoreByID(id string) (*storedomain.Store, error)
	UpdateStore(id string, store *storedomain.Store) (*storedomain.Store, error)
	DeleteStore(id string) error
}

type storeUsecase struct {
	storeRepo repository.StoreRepository
}

// NewStoreUsecase creates a new instance of storeUsecase
func NewStoreUsecase(storeRepo repository.StoreRepository) StoreUsecase {
	return &storeUsecase{storeRepo: storeRepo}
}

func (u *storeUsecase) CreateStore(store *storedomain.Store) error {
	return u.storeRepo.Create(store)
}

func (u *storeUsecase) GetStores() ([]*storedomain.Store, error) {
	return u.storeRepo.FindAll()
}

func (u *storeUsecase) GetStoreByID(id string) (*storedomain.Store, error) {
	store, err := u.storeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

func (u *storeUsecase) UpdateStore(id string, store *storedomain.Store) (*storedomain.Store, error) {
	existing, err := u.storeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrStoreNotFound
	}

	store.ID = existing.ID
	store.CreatedAt = existing.CreatedAt
	if err := u.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return store, nil
}

func (u *storeUsecase) DeleteStore(id string) error {
	deleted, err := u.storeRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStoreNotFound
	}
	return nil
}
