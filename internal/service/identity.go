package service

import (
	"context"
	"fmt"
	"strings"

	"goalbot/internal/domain"
	"goalbot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdentityService maps chats to bot users and handles verification codes
type IdentityService struct {
	userRepo   repository.BotUserRepository
	codeLength int
	newCode    func(length int) string
	logger     *zap.Logger
}

// NewIdentityService creates a new identity service
func NewIdentityService(userRepo repository.BotUserRepository, codeLength int, logger *zap.Logger) *IdentityService {
	return &IdentityService{
		userRepo:   userRepo,
		codeLength: codeLength,
		newCode:    randomCode,
		logger:     logger,
	}
}

// Resolve returns the bot user for the chat, creating it on first contact
func (s *IdentityService) Resolve(ctx context.Context, chatID int64, username string) (*domain.BotUser, error) {
	user, err := s.userRepo.GetOrCreate(ctx, chatID, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("resolve bot user %d: %w", chatID, err)
	}
	return user, nil
}

// VerificationCode returns the user's current code, issuing a new one if none is stored
func (s *IdentityService) VerificationCode(ctx context.Context, user *domain.BotUser) (string, error) {
	if user.VerificationCode != "" {
		return user.VerificationCode, nil
	}

	code := s.newCode(s.codeLength)
	if err := s.userRepo.SetVerificationCode(ctx, user.ID, code); err != nil {
		return "", fmt.Errorf("issue verification code: %w", err)
	}

	s.logger.Info("Verification code issued",
		zap.Int64("chat_id", user.ChatID),
		zap.Int64("bot_user_id", user.ID),
	)

	user.VerificationCode = code
	return code, nil
}

// LinkAccount binds the bot user that was shown code to accountID.
// It is called by the web API when the user enters the code there; the bot itself never links.
func (s *IdentityService) LinkAccount(ctx context.Context, code string, accountID int64) (*domain.BotUser, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.ErrInvalidVerificationCode
	}

	user, err := s.userRepo.LinkByVerificationCode(ctx, code, accountID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bot user linked to account",
		zap.Int64("chat_id", user.ChatID),
		zap.Int64("account_id", accountID),
	)
	return user, nil
}

// randomCode takes length characters from a random UUID, upper-cased and without dashes
func randomCode(length int) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if length <= 0 || length > len(raw) {
		return raw
	}
	return raw[:length]
}
