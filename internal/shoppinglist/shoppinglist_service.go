package shoppinglist

import (
	"context"
	"errors"
)

// Custom errors
var (
	ErrItemNotFound = errors.New("item not found")
)

type Service interface {
	GetItems(ctx context.Context, userID string) ([]ShoppingListItem, error)
	AddItem(ctx context.Context, userID string, req *AddItemRequest) ([]ShoppingListItem, error)
	SetCompleted(ctx context.Context, userID, itemID string, completed bool) ([]ShoppingListItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) ([]ShoppingListItem, error)
}

type shoppingListService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &shoppingListService{repo: repo}
}

// getOrCreate returns the user's list, creating an empty one on first
// access.
func (s *shoppingListService) getOrCreate(ctx context.Context, userID string) (*ShoppingList, error) {
	list, err := s.repo.FindByUser(ctx, userID)
	if err == nil {
		return list, nil
	}

	list = &ShoppingList{UserID: userID}
	if err := s.repo.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *shoppingListService) GetItems(ctx context.Context, userID string) ([]ShoppingListItem, error) {
	list, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, list.ID)
}

func (s *shoppingListService) AddItem(ctx context.Context, userID string, req *AddItemRequest) ([]ShoppingListItem, error) {
	list, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := &ShoppingListItem{
		ListID:   list.ID,
		ItemName: req.ItemName,
		Quantity: req.Quantity,
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, list.ID)
}

func (s *shoppingListService) SetCompleted(ctx context.Context, userID, itemID string, completed bool) ([]ShoppingListItem, error) {
	list, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindItem(ctx, list.ID, itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	item.IsCompleted = completed
	if err := s.repo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, list.ID)
}

func (s *shoppingListService) RemoveItem(ctx context.Context, userID, itemID string) ([]ShoppingListItem, error) {
	list, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.DeleteItem(ctx, list.ID, itemID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrItemNotFound
	}
	return s.repo.ListItems(ctx, list.ID)
}
