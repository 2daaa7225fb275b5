package testutil

import (
	"context"
	"time"

	"goalbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBotUserRepository is a mock for BotUserRepository
type MockBotUserRepository struct {
	mock.Mock
}

func (m *MockBotUserRepository) GetOrCreate(ctx context.Context, chatID int64, username string) (*domain.BotUser, error) {
	args := m.Called(ctx, chatID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BotUser), args.Error(1)
}

func (m *MockBotUserRepository) SetVerificationCode(ctx context.Context, id int64, code string) error {
	args := m.Called(ctx, id, code)
	return args.Error(0)
}

func (m *MockBotUserRepository) LinkByVerificationCode(ctx context.Context, code string, accountID int64) (*domain.BotUser, error) {
	args := m.Called(ctx, code, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BotUser), args.Error(1)
}

func (m *MockBotUserRepository) ClearStaleCodes(ctx context.Context, olderThan time.Duration) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// MockGoalRepository is a mock for GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) ListActiveCategories(ctx context.Context, accountID int64) ([]domain.Category, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockGoalRepository) ListActiveGoals(ctx context.Context, accountID int64) ([]domain.Goal, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) CreateGoal(ctx context.Context, accountID, categoryID int64, title string) (*domain.Goal, error) {
	args := m.Called(ctx, accountID, categoryID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

// MockIdentity is a mock for the bot's identity resolver
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) Resolve(ctx context.Context, chatID int64, username string) (*domain.BotUser, error) {
	args := m.Called(ctx, chatID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BotUser), args.Error(1)
}

func (m *MockIdentity) VerificationCode(ctx context.Context, user *domain.BotUser) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

// MockGoalStore is a mock for the bot's goal store
type MockGoalStore struct {
	mock.Mock
}

func (m *MockGoalStore) ActiveCategories(ctx context.Context, accountID int64) ([]domain.Category, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockGoalStore) ActiveGoals(ctx context.Context, accountID int64) ([]domain.Goal, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalStore) CreateGoal(ctx context.Context, accountID int64, category domain.Category, title string) (*domain.Goal, error) {
	args := m.Called(ctx, accountID, category, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

// MockTransport is a mock for the chat transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) FetchUpdates(ctx context.Context, offset int64) ([]domain.Update, error) {
	args := m.Called(ctx, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Update), args.Error(1)
}

func (m *MockTransport) SendText(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}
