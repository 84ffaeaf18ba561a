package domain

import "time"

// SpendingCategory enumerates the predefined budget entry categories.
type SpendingCategory string

const (
	CategoryIncome        SpendingCategory = "Income"
	CategoryGoals         SpendingCategory = "Goals"
	CategoryGroceries     SpendingCategory = "Groceries"
	CategoryEatingOut     SpendingCategory = "Eating out"
	CategoryTransport     SpendingCategory = "Transport"
	CategoryUtilities     SpendingCategory = "Utilities"
	CategoryEntertainment SpendingCategory = "Entertainment"
	CategoryHealth        SpendingCategory = "Health"
	CategoryShopping      SpendingCategory = "Shopping"
	CategoryTravel        SpendingCategory = "Travel"
	CategoryOther         SpendingCategory = "Other"
)

type BudgetEntry struct {
	Category SpendingCategory `json:"category" binding:"required,oneof=Income Goals Groceries 'Eating out' Transport Utilities Entertainment Health Shopping Travel Other"`
	Amount   float64          `json:"amount" binding:"required"`
	Date     time.Time        `json:"date" binding:"required"`
	Week     int              `json:"week" binding:"required"`
	Notes    string           `json:"notes,omitempty"`
}

type Budget struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	Title     string        `json:"title" binding:"required" gorm:"not null"`
	Notes     string        `json:"notes,omitempty"`
	Entries   []BudgetEntry `json:"entries,omitempty" binding:"omitempty,dive" gorm:"serializer:json"`
	Owner     string        `json:"owner" gorm:"index"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
