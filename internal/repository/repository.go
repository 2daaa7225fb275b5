package repository

import (
	"context"
	"time"

	"goalbot/internal/domain"
)

// BotUserRepository defines bot user data operations
type BotUserRepository interface {
	GetOrCreate(ctx context.Context, chatID int64, username string) (*domain.BotUser, error)
	SetVerificationCode(ctx context.Context, id int64, code string) error
	LinkByVerificationCode(ctx context.Context, code string, accountID int64) (*domain.BotUser, error)
	ClearStaleCodes(ctx context.Context, olderThan time.Duration) (int64, error)
}

// GoalRepository defines category and goal data operations
type GoalRepository interface {
	ListActiveCategories(ctx context.Context, accountID int64) ([]domain.Category, error)
	ListActiveGoals(ctx context.Context, accountID int64) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, accountID, categoryID int64, title string) (*domain.Goal, error)
}
