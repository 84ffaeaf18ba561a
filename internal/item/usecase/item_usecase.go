package usecase

import (
	"errors"

	itemdomain "homehub-backend/internal/item/domain"
	"homehub-backend/internal/item/repository"
)

var ErrItemNotFound = errors.New("item not found")

// ItemUsecase defines the pantry item business logic contract
type ItemUsecase interface {
	CreateItem(item *itemdomain.Item) error
	GetItems() ([]*itemdomain.Item, error)
	GetItemByID(id string) (*itemdomain.Item, error)
	UpdateItem(id string, item *itemdomain.Item) (*itemdomain.Item, error)
	DeleteItem(id string) error
}

type itemUsecase struct {
	itemRepo repository.ItemRepository
}

// NewItemUsecase creates a new instance of itemUsecase
func NewItemUsecase(itemRepo repository.ItemRepository) ItemUsecase {
	return &itemUsecase{itemRepo: itemRepo}
}

func (u *itemUsecase) CreateItem(item *itemdomain.Item) error {
	return u.itemRepo.Create(item)
}

func (u *itemUsecase) GetItems() ([]*itemdomain.Item, error) {
	return u.itemRepo.FindAll()
}

func (u *itemUsecase) GetItemByID(id string) (*itemdomain.Item, error) {
	item, err := u.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (u *itemUsecase) UpdateItem(id string, item *itemdomain.Item) (*itemdomain.Item, error) {
	existing, err := u.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := u.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *itemUsecase) DeleteItem(id string) error {
	deleted, err := u.itemRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
