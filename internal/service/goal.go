package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"goalbot/internal/domain"
	"goalbot/internal/repository"
)

// GoalService handles goal-related business logic
type GoalService struct {
	goalRepo repository.GoalRepository
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// ActiveCategories returns the account's categories that are not deleted
func (s *GoalService) ActiveCategories(ctx context.Context, accountID int64) ([]domain.Category, error) {
	return s.goalRepo.ListActiveCategories(ctx, accountID)
}

// ActiveGoals returns the account's goals that are not archived
func (s *GoalService) ActiveGoals(ctx context.Context, accountID int64) ([]domain.Goal, error) {
	return s.goalRepo.ListActiveGoals(ctx, accountID)
}

// CreateGoal validates the title and creates a goal in category
func (s *GoalService) CreateGoal(ctx context.Context, accountID int64, category domain.Category, title string) (*domain.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrEmptyGoalTitle
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return nil, domain.ErrGoalTitleTooLong
	}

	goal, err := s.goalRepo.CreateGoal(ctx, accountID, category.ID, title)
	if err != nil {
		return nil, fmt.Errorf("create goal in category %d: %w", category.ID, err)
	}
	return goal, nil
}
