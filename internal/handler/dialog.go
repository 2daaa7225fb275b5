package handler

import (
	"context"
	"errors"

	"goalbot/internal/domain"

	"go.uber.org/zap"
)

// handleText handles plain text (and unknown commands) based on the session phase
func (h *Handler) handleText(ctx context.Context, accountID int64, session domain.Session, text string) (string, domain.Session) {
	switch session.Phase() {
	case domain.PhaseAwaitingCategorySelection:
		return h.handleCategorySelection(ctx, accountID, session, text)
	case domain.PhaseAwaitingGoalTitle:
		return h.handleGoalTitle(ctx, accountID, session, text)
	default:
		return msgUnknownCommand, domain.NewIdleSession(session.ChatID())
	}
}

// handleCategorySelection matches text against category titles exactly.
// Categories are read again here because they may have changed since /create.
func (h *Handler) handleCategorySelection(ctx context.Context, accountID int64, session domain.Session, text string) (string, domain.Session) {
	categories, err := h.goals.ActiveCategories(ctx, accountID)
	if err != nil {
		return h.fail(err, "Failed to list categories", session)
	}

	if len(categories) == 0 {
		return msgNoCategories, domain.NewIdleSession(session.ChatID())
	}

	for _, c := range categories {
		if c.Title == text {
			return msgEnterTitle, domain.NewGoalTitleSession(session.ChatID(), c)
		}
	}

	return invalidCategoryMessage(categories), session
}

// handleGoalTitle creates the goal in the selected category
func (h *Handler) handleGoalTitle(ctx context.Context, accountID int64, session domain.Session, text string) (string, domain.Session) {
	category, ok := session.SelectedCategory()
	if !ok {
		// Unreachable through the session constructors.
		return h.fail(errors.New("no category selected"), "Inconsistent session", session)
	}

	goal, err := h.goals.CreateGoal(ctx, accountID, category, text)
	switch {
	case errors.Is(err, domain.ErrEmptyGoalTitle):
		return msgEnterTitle, session
	case errors.Is(err, domain.ErrGoalTitleTooLong):
		return msgTitleTooLong, session
	case errors.Is(err, domain.ErrCategoryNotFound):
		h.logger.Info("Selected category disappeared",
			zap.Int64("chat_id", session.ChatID()),
			zap.Int64("category_id", category.ID),
		)
		return msgCategoryGone, domain.NewIdleSession(session.ChatID())
	case err != nil:
		return h.fail(err, "Failed to create goal", session)
	}

	h.logger.Info("Goal created",
		zap.Int64("chat_id", session.ChatID()),
		zap.Int64("goal_id", goal.ID),
		zap.Int64("category_id", category.ID),
	)
	return goalCreatedMessage(goal), domain.NewIdleSession(session.ChatID())
}
