package domain

import "time"

// Barcode is one purchased instance of an item, optionally tied to a store.
type Barcode struct {
	Code          string     `json:"code" binding:"required"`
	StoreID       string     `json:"store,omitempty"`
	Price         float64    `json:"price,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	DatePurchased *time.Time `json:"date_purchased,omitempty"`
}

type Item struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" binding:"required" gorm:"not null"`
	Category        string     `json:"category" binding:"required,oneof=Dairy Vegetables Fruits Meat Grains Snacks Drinks Other"`
	Quantity        int        `json:"quantity" binding:"required,min=1"`
	Unit            string     `json:"unit" binding:"required,oneof=pcs kg g liters ml pack bottle can box other"`
	StorageLocation string     `json:"storage_location" binding:"required,oneof=Fridge Pantry Freezer"`
	Price           float64    `json:"price"`
	StoreID         string     `json:"store,omitempty" gorm:"index"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	DatePurchased   *time.Time `json:"date_purchased,omitempty"`
	Barcodes        []Barcode  `json:"barcodes" gorm:"serializer:json"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
