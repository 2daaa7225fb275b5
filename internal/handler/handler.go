package handler

import (
	"context"
	"strings"

	"goalbot/internal/domain"

	"go.uber.org/zap"
)

// IdentityResolver issues verification codes for unlinked chats
type IdentityResolver interface {
	VerificationCode(ctx context.Context, user *domain.BotUser) (string, error)
}

// GoalStore is the goal data the dialog needs
type GoalStore interface {
	ActiveCategories(ctx context.Context, accountID int64) ([]domain.Category, error)
	ActiveGoals(ctx context.Context, accountID int64) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, accountID int64, category domain.Category, title string) (*domain.Goal, error)
}

// Handler turns one inbound message into a reply and the chat's next session.
// It never sends anything itself.
type Handler struct {
	identity IdentityResolver
	goals    GoalStore
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(identity IdentityResolver, goals GoalStore, logger *zap.Logger) *Handler {
	return &Handler{
		identity: identity,
		goals:    goals,
		logger:   logger,
	}
}

// Dispatch routes text from user according to the current session.
// Every call yields exactly one non-empty reply.
func (h *Handler) Dispatch(ctx context.Context, user *domain.BotUser, session domain.Session, text string) (string, domain.Session) {
	if !user.IsVerified() {
		return h.handleUnverified(ctx, user), session
	}

	accountID := *user.AccountID
	text = strings.TrimSpace(text)

	switch parseCommand(text) {
	case cmdStart:
		return msgHelp, domain.NewIdleSession(session.ChatID())
	case cmdGoals:
		return h.handleGoals(ctx, accountID, session)
	case cmdCreate:
		return h.handleCreate(ctx, accountID, session.ChatID())
	case cmdCancel:
		return h.handleCancel(session)
	}

	return h.handleText(ctx, accountID, session, text)
}

func (h *Handler) handleUnverified(ctx context.Context, user *domain.BotUser) string {
	code, err := h.identity.VerificationCode(ctx, user)
	if err != nil {
		h.logger.Error("Failed to get verification code",
			zap.Error(err),
			zap.Int64("chat_id", user.ChatID),
		)
		return msgFailed
	}
	return verificationMessage(code)
}

// fail logs err and drops any pending dialog
func (h *Handler) fail(err error, msg string, session domain.Session) (string, domain.Session) {
	h.logger.Error(msg,
		zap.Error(err),
		zap.Int64("chat_id", session.ChatID()),
		zap.Stringer("phase", session.Phase()),
	)
	return msgFailed, domain.NewIdleSession(session.ChatID())
}
