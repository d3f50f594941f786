package meal

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeMealRepository keeps meals in memory with the same comparison
// semantics as the SQL queries.
type fakeMealRepository struct {
	meals map[string]*Meal
	next  int
}

func newFakeMealRepository() *fakeMealRepository {
	return &fakeMealRepository{meals: make(map[string]*Meal)}
}

func (f *fakeMealRepository) Create(ctx context.Context, m *Meal) error {
	if m.ID == "" {
		f.next++
		m.ID = fmt.Sprintf("meal-%d", f.next)
	}
	copied := *m
	f.meals[m.ID] = &copied
	return nil
}

func (f *fakeMealRepository) FindOwned(ctx context.Context, id, userID string) (*Meal, error) {
	m, ok := f.meals[id]
	if !ok || m.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMealRepository) Save(ctx context.Context, m *Meal) error {
	copied := *m
	f.meals[m.ID] = &copied
	return nil
}

func (f *fakeMealRepository) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	m, ok := f.meals[id]
	if !ok || m.UserID != userID {
		return 0, nil
	}
	delete(f.meals, id)
	return 1, nil
}

func (f *fakeMealRepository) ListBetween(ctx context.Context, userID string, start, end time.Time) ([]Meal, error) {
	var out []Meal
	for _, m := range f.meals {
		if m.UserID != userID {
			continue
		}
		if m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMealRepository) SlotTaken(ctx context.Context, userID string, day time.Time, mealType, excludeID string) (bool, error) {
	for _, m := range f.meals {
		if m.ID == excludeID {
			continue
		}
		if m.UserID == userID && m.Date.Equal(day) && m.Type == mealType {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateAndGetByDay(t *testing.T) {
	svc := NewService(newFakeMealRepository())
	ctx := context.Background()

	m, err := svc.Create(ctx, "alice", &CreateMealRequest{
		Date:     "2024-03-10",
		Type:     TypeLunch,
		MealName: "Pasta",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), m.Date)

	sameDay, err := svc.GetByDay(ctx, "alice", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, sameDay, 1)
	assert.Equal(t, "Pasta", sameDay[0].MealName)

	nextDay, err := svc.GetByDay(ctx, "alice", "2024-03-11")
	require.NoError(t, err)
	assert.Empty(t, nextDay)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := NewService(newFakeMealRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", &CreateMealRequest{Date: "March 10", Type: TypeLunch, MealName: "Pasta"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: "Brunch", MealName: "Pasta"})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestSlotUniqueness(t *testing.T) {
	svc := NewService(newFakeMealRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: TypeLunch, MealName: "Pasta"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: TypeLunch, MealName: "Soup"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Same day, different type is fine; same type, different day is fine.
	_, err = svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: TypeDinner, MealName: "Soup"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-11", Type: TypeLunch, MealName: "Soup"})
	assert.NoError(t, err)

	// Another user is unaffected.
	_, err = svc.Create(ctx, "bob", &CreateMealRequest{Date: "2024-03-10", Type: TypeLunch, MealName: "Rice"})
	assert.NoError(t, err)
}

func TestUpdateMovesSlot(t *testing.T) {
	svc := NewService(newFakeMealRepository())
	ctx := context.Background()

	lunch, err := svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: TypeLunch, MealName: "Pasta"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: TypeDinner, MealName: "Soup"})
	require.NoError(t, err)

	// Moving lunch onto the occupied dinner slot is rejected.
	_, err = svc.Update(ctx, lunch.ID, "alice", &UpdateMealRequest{Type: TypeDinner})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Renaming in place only touches the same slot.
	updated, err := svc.Update(ctx, lunch.ID, "alice", &UpdateMealRequest{MealName: "Lasagna"})
	require.NoError(t, err)
	assert.Equal(t, "Lasagna", updated.MealName)
	assert.Equal(t, TypeLunch, updated.Type)

	// Moving to a free day works.
	moved, err := svc.Update(ctx, lunch.ID, "alice", &UpdateMealRequest{Date: "2024-03-12"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), moved.Date)
}

func TestMutationScopedToOwner(t *testing.T) {
	svc := NewService(newFakeMealRepository())
	ctx := context.Background()

	m, err := svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: TypeLunch, MealName: "Pasta"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, m.ID, "bob", &UpdateMealRequest{MealName: "Stolen"})
	assert.ErrorIs(t, err, ErrMealNotFound)

	err = svc.Delete(ctx, m.ID, "bob")
	assert.ErrorIs(t, err, ErrMealNotFound)

	// The owner still sees the untouched meal.
	meals, err := svc.GetByDay(ctx, "alice", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Pasta", meals[0].MealName)

	require.NoError(t, svc.Delete(ctx, m.ID, "alice"))
	err = svc.Delete(ctx, m.ID, "alice")
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestRangeOfOneDayEqualsGetByDay(t *testing.T) {
	svc := NewService(newFakeMealRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: TypeLunch, MealName: "Pasta"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-11", Type: TypeLunch, MealName: "Soup"})
	require.NoError(t, err)

	byDay, err := svc.GetByDay(ctx, "alice", "2024-03-10")
	require.NoError(t, err)
	byRange, err := svc.GetByRange(ctx, "alice", "2024-03-10", "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, len(byDay), len(byRange))
	assert.Equal(t, byDay[0].ID, byRange[0].ID)

	both, err := svc.GetByRange(ctx, "alice", "2024-03-10", "2024-03-11")
	require.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestGetByWeekWindow(t *testing.T) {
	svc := NewService(newFakeMealRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-10", Type: TypeLunch, MealName: "Pasta"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-16", Type: TypeDinner, MealName: "Stew"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", &CreateMealRequest{Date: "2024-03-17", Type: TypeDinner, MealName: "Curry"})
	require.NoError(t, err)

	// Week window is [2024-03-10 .. 2024-03-16] inclusive.
	week, err := svc.GetByWeek(ctx, "alice", "2024-03-10")
	require.NoError(t, err)
	assert.Len(t, week, 2)

	// Shifting the start by one day drops the 03-10 meal.
	week, err = svc.GetByWeek(ctx, "alice", "2024-03-11")
	require.NoError(t, err)
	require.Len(t, week, 2)
	for _, m := range week {
		assert.NotEqual(t, "Pasta", m.MealName)
	}
}
