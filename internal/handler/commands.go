package handler

import (
	"context"
	"strings"

	"goalbot/internal/domain"

	"go.uber.org/zap"
)

type command int

const (
	cmdNone command = iota
	cmdStart
	cmdGoals
	cmdCreate
	cmdCancel
)

// parseCommand recognises a known slash command.
// A "@botname" suffix is accepted; anything after the first word is ignored.
func parseCommand(text string) command {
	if !strings.HasPrefix(text, "/") {
		return cmdNone
	}

	word := strings.Fields(text)[0]
	if at := strings.IndexByte(word, '@'); at >= 0 {
		word = word[:at]
	}

	switch word {
	case "/start":
		return cmdStart
	case "/goals":
		return cmdGoals
	case "/create":
		return cmdCreate
	case "/cancel":
		return cmdCancel
	default:
		return cmdNone
	}
}

// handleGoals lists active goals; a pending dialog is kept as is
func (h *Handler) handleGoals(ctx context.Context, accountID int64, session domain.Session) (string, domain.Session) {
	goals, err := h.goals.ActiveGoals(ctx, accountID)
	if err != nil {
		return h.fail(err, "Failed to list goals", session)
	}
	return goalsMessage(goals), session
}

// handleCreate starts (or restarts) the goal dialog
func (h *Handler) handleCreate(ctx context.Context, accountID, chatID int64) (string, domain.Session) {
	categories, err := h.goals.ActiveCategories(ctx, accountID)
	if err != nil {
		return h.fail(err, "Failed to list categories", domain.NewIdleSession(chatID))
	}

	if len(categories) == 0 {
		return msgNoCategories, domain.NewIdleSession(chatID)
	}

	return chooseCategoryMessage(categories), domain.NewCategorySelectionSession(chatID)
}

// handleCancel resets the chat to idle
func (h *Handler) handleCancel(session domain.Session) (string, domain.Session) {
	idle := domain.NewIdleSession(session.ChatID())
	if session.Phase() == domain.PhaseIdle {
		return msgNothingToCancel, idle
	}

	h.logger.Info("Dialog cancelled",
		zap.Int64("chat_id", session.ChatID()),
		zap.Stringer("phase", session.Phase()),
	)
	return msgCancelled, idle
}
