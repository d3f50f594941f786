package shoppinglist

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByUser(ctx context.Context, userID string) (*ShoppingList, error)
	Create(ctx context.Context, list *ShoppingList) error
	AddItem(ctx context.Context, item *ShoppingListItem) error
	// FindItem scopes the item lookup to the list so ids from other users'
	// lists report absence.
	FindItem(ctx context.Context, listID, itemID string) (*ShoppingListItem, error)
	SaveItem(ctx context.Context, item *ShoppingListItem) error
	DeleteItem(ctx context.Context, listID, itemID string) (int64, error)
	ListItems(ctx context.Context, listID string) ([]ShoppingListItem, error)
}

type shoppingListRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) FindByUser(ctx context.Context, userID string) (*ShoppingList, error) {
	var list ShoppingList
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) Create(ctx context.Context, list *ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingListRepository) AddItem(ctx context.Context, item *ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingListRepository) FindItem(ctx context.Context, listID, itemID string) (*ShoppingListItem, error) {
	var item ShoppingListItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", itemID, listID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) SaveItem(ctx context.Context, item *ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingListRepository) DeleteItem(ctx context.Context, listID, itemID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", itemID, listID).
		Delete(&ShoppingListItem{})
	return res.RowsAffected, res.Error
}

func (r *shoppingListRepository) ListItems(ctx context.Context, listID string) ([]ShoppingListItem, error) {
	var items []ShoppingListItem
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
