package domain

import "time"

type RecipeIngredient struct {
	ItemID   string  `json:"item" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
	Notes    string  `json:"notes,omitempty"`
}

type Step struct {
	StepNumber  int    `json:"step_number" binding:"required,min=1"`
	Description string `json:"description" binding:"required"`
	Duration    int    `json:"duration,omitempty"` // minutes
}

type Recipe struct {
	ID          string             `json:"id" gorm:"primaryKey"`
	Name        string             `json:"name" binding:"required" gorm:"not null"`
	Description string             `json:"description,omitempty"`
	Servings    int                `json:"servings" binding:"required,min=1"`
	PrepTime    int                `json:"prep_time" binding:"min=0"` // minutes
	CookTime    int                `json:"cook_time" binding:"min=0"` // minutes
	Ingredients []RecipeIngredient `json:"ingredients" binding:"required,min=1,dive" gorm:"serializer:json"`
	Steps       []Step             `json:"steps" binding:"required,min=1,dive" gorm:"serializer:json"`
	Category    []string           `json:"category" binding:"required,min=1" gorm:"serializer:json"`
	Difficulty  string             `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	ImageURL    string             `json:"image_url,omitempty"`
	Rating      int                `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Notes       string             `json:"notes,omitempty"`
	CreatedBy   string             `json:"created_by" gorm:"index"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
