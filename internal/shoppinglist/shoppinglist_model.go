package shoppinglist

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */

// ShoppingList is the single list container per user, created lazily on
// first access.
type ShoppingList struct {
	ID        string             `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string             `gorm:"unique;not null" json:"userId"`
	Items     []ShoppingListItem `gorm:"foreignKey:ListID" json:"items"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// ShoppingListItem is one checkable line item. Quantity is free text
// ("2 bags", "500g"), not a number.
type ShoppingListItem struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	ListID      string    `gorm:"not null;index" json:"-"`
	ItemName    string    `gorm:"not null" json:"itemName"`
	Quantity    string    `gorm:"not null" json:"quantity"`
	IsCompleted bool      `gorm:"not null;default:false" json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (i *ShoppingListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

/** -------------------- DTOs -------------------- */

type AddItemRequest struct {
	ItemName string `json:"itemName" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

type SetCompletedRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}
