package meal

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m *Meal) error
	// FindOwned is the scoped lookup: it matches id and owner in one query
	// so a missing meal and someone else's meal are indistinguishable.
	FindOwned(ctx context.Context, id, userID string) (*Meal, error)
	Save(ctx context.Context, m *Meal) error
	// DeleteOwned reports how many rows went away so the service can map
	// zero to not found.
	DeleteOwned(ctx context.Context, id, userID string) (int64, error)
	ListBetween(ctx context.Context, userID string, start, end time.Time) ([]Meal, error)
	// SlotTaken reports whether the (owner, day, type) slot already holds a
	// meal other than excludeID.
	SlotTaken(ctx context.Context, userID string, day time.Time, mealType, excludeID string) (bool, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, m *Meal) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mealRepository) FindOwned(ctx context.Context, id, userID string) (*Meal, error) {
	var m Meal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mealRepository) Save(ctx context.Context, m *Meal) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *mealRepository) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Meal{})
	return res.RowsAffected, res.Error
}

func (r *mealRepository) ListBetween(ctx context.Context, userID string, start, end time.Time) ([]Meal, error) {
	var meals []Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) SlotTaken(ctx context.Context, userID string, day time.Time, mealType, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&Meal{}).
		Where("user_id = ? AND date = ? AND type = ?", userID, day, mealType)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
