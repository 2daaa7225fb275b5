package testutil

import (
	"time"

	"goalbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewUnverifiedUser creates a bot user that is not linked to an account
func NewUnverifiedUser(id, chatID int64, code string) *domain.BotUser {
	return &domain.BotUser{
		ID:               id,
		ChatID:           chatID,
		VerificationCode: code,
		CreatedAt:        time.Now(),
	}
}

// NewVerifiedUser creates a bot user linked to accountID
func NewVerifiedUser(id, chatID, accountID int64) *domain.BotUser {
	return &domain.BotUser{
		ID:        id,
		ChatID:    chatID,
		AccountID: &accountID,
		CreatedAt: time.Now(),
	}
}

// NewTestCategories creates categories with sequential IDs starting at 1
func NewTestCategories(accountID int64, titles ...string) []domain.Category {
	categories := make([]domain.Category, 0, len(titles))
	for i, title := range titles {
		categories = append(categories, domain.Category{
			ID:        int64(i + 1),
			Title:     title,
			AccountID: accountID,
		})
	}
	return categories
}

// NewTestGoal creates a goal in the to-do status
func NewTestGoal(id, categoryID, accountID int64, title string) *domain.Goal {
	return &domain.Goal{
		ID:         id,
		Title:      title,
		CategoryID: categoryID,
		AccountID:  accountID,
		Status:     domain.GoalStatusToDo,
		Priority:   domain.GoalPriorityMedium,
		CreatedAt:  time.Now(),
	}
}

// NewTextUpdate creates an update carrying a text message
func NewTextUpdate(id, chatID int64, text string) domain.Update {
	return domain.Update{
		ID: id,
		Message: &domain.Message{
			ChatID:       chatID,
			SenderHandle: "tester",
			Text:         text,
		},
	}
}
