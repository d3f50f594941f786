package meal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */

// Meal types.
const (
	TypeBreakfast = "Breakfast"
	TypeLunch     = "Lunch"
	TypeDinner    = "Dinner"
	TypeSnack     = "Snack"
)

var validTypes = map[string]bool{
	TypeBreakfast: true,
	TypeLunch:     true,
	TypeDinner:    true,
	TypeSnack:     true,
}

// Meal is one dated plan entry. Date is always UTC midnight of the
// calendar day; the composite unique index makes each (owner, day, type)
// slot hold at most one meal, so update is the only way to change an
// existing slot.
type Meal struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID         string    `gorm:"not null;uniqueIndex:idx_owner_day_type" json:"userId"`
	Date           time.Time `gorm:"not null;uniqueIndex:idx_owner_day_type" json:"date"`
	Type           string    `gorm:"not null;type:varchar(20);uniqueIndex:idx_owner_day_type" json:"type"`
	MealName       string    `gorm:"not null" json:"mealName"`
	AdditionalDish string    `json:"additionalDish,omitempty"`
	SideDish       string    `json:"sideDish,omitempty"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

/** -------------------- DTOs -------------------- */

type CreateMealRequest struct {
	Date           string `json:"date" binding:"required"`
	Type           string `json:"type" binding:"required"`
	MealName       string `json:"mealName" binding:"required"`
	AdditionalDish string `json:"additionalDish"`
	SideDish       string `json:"sideDish"`
	AdditionalInfo string `json:"additionalInfo"`
}

// UpdateMealRequest carries only the fields to change; empty fields keep
// their current values.
type UpdateMealRequest struct {
	Date           string `json:"date"`
	Type           string `json:"type"`
	MealName       string `json:"mealName"`
	AdditionalDish string `json:"additionalDish"`
	SideDish       string `json:"sideDish"`
	AdditionalInfo string `json:"additionalInfo"`
}
