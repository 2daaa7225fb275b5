package service

import (
	"context"
	"fmt"
	"testing"

	"goalbot/internal/domain"
	"goalbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("same chat resolves to same user", func(t *testing.T) {
		user := testutil.NewUnverifiedUser(1, 100, "")
		mockRepo := new(testutil.MockBotUserRepository)
		mockRepo.On("GetOrCreate", ctx, int64(100), "alice").Return(user, nil).Twice()

		service := NewIdentityService(mockRepo, 8, testutil.NewTestLogger())

		first, err := service.Resolve(ctx, 100, " alice ")
		require.NoError(t, err)
		second, err := service.Resolve(ctx, 100, "alice")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.False(t, first.IsVerified())
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(testutil.MockBotUserRepository)
		mockRepo.On("GetOrCreate", ctx, int64(100), "").Return(nil, fmt.Errorf("db error"))

		service := NewIdentityService(mockRepo, 8, testutil.NewTestLogger())

		user, err := service.Resolve(ctx, 100, "")
		assert.Error(t, err)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})
}

func TestIdentityService_VerificationCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		existingCode  string
		mockError     error
		expectedCode  string
		expectStore   bool
		expectedError bool
	}{
		{
			name:         "existing code is reused",
			existingCode: "KEEPME",
			expectedCode: "KEEPME",
		},
		{
			name:         "missing code is issued",
			existingCode: "",
			expectedCode: "FRESH123",
			expectStore:  true,
		},
		{
			name:          "store error",
			existingCode:  "",
			mockError:     fmt.Errorf("db error"),
			expectStore:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testutil.NewUnverifiedUser(1, 100, tt.existingCode)
			mockRepo := new(testutil.MockBotUserRepository)
			if tt.expectStore {
				mockRepo.On("SetVerificationCode", ctx, int64(1), "FRESH123").Return(tt.mockError)
			}

			service := NewIdentityService(mockRepo, 8, testutil.NewTestLogger())
			service.newCode = func(int) string { return "FRESH123" }

			code, err := service.VerificationCode(ctx, user)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Empty(t, user.VerificationCode)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCode, code)
				assert.Equal(t, tt.expectedCode, user.VerificationCode)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestIdentityService_LinkAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("code is normalized", func(t *testing.T) {
		linked := testutil.NewVerifiedUser(1, 100, 7)
		mockRepo := new(testutil.MockBotUserRepository)
		mockRepo.On("LinkByVerificationCode", ctx, "ABC123", int64(7)).Return(linked, nil)

		service := NewIdentityService(mockRepo, 8, testutil.NewTestLogger())

		user, err := service.LinkAccount(ctx, "  abc123 ", 7)
		require.NoError(t, err)
		assert.True(t, user.IsVerified())
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty code", func(t *testing.T) {
		mockRepo := new(testutil.MockBotUserRepository)
		service := NewIdentityService(mockRepo, 8, testutil.NewTestLogger())

		user, err := service.LinkAccount(ctx, "   ", 7)
		assert.ErrorIs(t, err, domain.ErrInvalidVerificationCode)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "LinkByVerificationCode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown code", func(t *testing.T) {
		mockRepo := new(testutil.MockBotUserRepository)
		mockRepo.On("LinkByVerificationCode", ctx, "NOPE", int64(7)).Return(nil, domain.ErrInvalidVerificationCode)

		service := NewIdentityService(mockRepo, 8, testutil.NewTestLogger())

		user, err := service.LinkAccount(ctx, "nope", 7)
		assert.ErrorIs(t, err, domain.ErrInvalidVerificationCode)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})
}

func TestRandomCode(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected int
	}{
		{name: "short code", length: 6, expected: 6},
		{name: "default code", length: 12, expected: 12},
		{name: "full uuid", length: 32, expected: 32},
		{name: "too long falls back to full", length: 64, expected: 32},
		{name: "zero falls back to full", length: 0, expected: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := randomCode(tt.length)
			assert.Len(t, code, tt.expected)
			assert.Regexp(t, "^[0-9A-F]+$", code)
		})
	}

	assert.NotEqual(t, randomCode(12), randomCode(12))
}
