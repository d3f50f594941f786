package meal

import (
	"context"
	"errors"
)

// Custom errors
var (
	ErrMealNotFound = errors.New("food entry not found")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrInvalidType  = errors.New("type must be Breakfast, Lunch, Dinner or Snack")
	ErrSlotTaken    = errors.New("a meal of this type already exists on that day")
)

type Service interface {
	Create(ctx context.Context, userID string, req *CreateMealRequest) (*Meal, error)
	Update(ctx context.Context, id, userID string, req *UpdateMealRequest) (*Meal, error)
	Delete(ctx context.Context, id, userID string) error
	GetByDay(ctx context.Context, userID, date string) ([]Meal, error)
	GetByRange(ctx context.Context, userID, start, end string) ([]Meal, error)
	GetByWeek(ctx context.Context, userID, start string) ([]Meal, error)
}

type mealService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &mealService{repo: repo}
}

func (s *mealService) Create(ctx context.Context, userID string, req *CreateMealRequest) (*Meal, error) {
	day, err := ParseDay(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !validTypes[req.Type] {
		return nil, ErrInvalidType
	}

	taken, err := s.repo.SlotTaken(ctx, userID, day, req.Type, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	m := &Meal{
		UserID:         userID,
		Date:           day,
		Type:           req.Type,
		MealName:       req.MealName,
		AdditionalDish: req.AdditionalDish,
		SideDish:       req.SideDish,
		AdditionalInfo: req.AdditionalInfo,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update mutates an owned meal. A wrong owner reports not found, never
// forbidden, so meal ids do not leak across accounts.
func (s *mealService) Update(ctx context.Context, id, userID string, req *UpdateMealRequest) (*Meal, error) {
	m, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, ErrMealNotFound
	}

	day := m.Date
	if req.Date != "" {
		day, err = ParseDay(req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}
	mealType := m.Type
	if req.Type != "" {
		if !validTypes[req.Type] {
			return nil, ErrInvalidType
		}
		mealType = req.Type
	}

	if !day.Equal(m.Date) || mealType != m.Type {
		taken, err := s.repo.SlotTaken(ctx, userID, day, mealType, m.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlotTaken
		}
	}

	m.Date = day
	m.Type = mealType
	if req.MealName != "" {
		m.MealName = req.MealName
	}
	if req.AdditionalDish != "" {
		m.AdditionalDish = req.AdditionalDish
	}
	if req.SideDish != "" {
		m.SideDish = req.SideDish
	}
	if req.AdditionalInfo != "" {
		m.AdditionalInfo = req.AdditionalInfo
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mealService) Delete(ctx context.Context, id, userID string) error {
	affected, err := s.repo.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (s *mealService) GetByDay(ctx context.Context, userID, date string) ([]Meal, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	start, end := DayRange(day)
	return s.repo.ListBetween(ctx, userID, start, end)
}

func (s *mealService) GetByRange(ctx context.Context, userID, startDate, endDate string) ([]Meal, error) {
	startDay, err := ParseDay(startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDay, err := ParseDay(endDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	start, _ := DayRange(startDay)
	_, end := DayRange(endDay)
	return s.repo.ListBetween(ctx, userID, start, end)
}

func (s *mealService) GetByWeek(ctx context.Context, userID, startDate string) ([]Meal, error) {
	startDay, err := ParseDay(startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	start, end := WeekRange(startDay)
	return s.repo.ListBetween(ctx, userID, start, end)
}
