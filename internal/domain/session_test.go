package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_SelectedCategoryOnlyWhileAwaitingTitle(t *testing.T) {
	work := Category{ID: 1, Title: "Work", AccountID: 7}

	tests := []struct {
		name        string
		session     Session
		phase       Phase
		hasCategory bool
	}{
		{
			name:        "idle",
			session:     NewIdleSession(42),
			phase:       PhaseIdle,
			hasCategory: false,
		},
		{
			name:        "awaiting category",
			session:     NewCategorySelectionSession(42),
			phase:       PhaseAwaitingCategorySelection,
			hasCategory: false,
		},
		{
			name:        "awaiting title",
			session:     NewGoalTitleSession(42, work),
			phase:       PhaseAwaitingGoalTitle,
			hasCategory: true,
		},
		{
			name:        "zero value",
			session:     Session{},
			phase:       PhaseIdle,
			hasCategory: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.phase, tt.session.Phase())

			category, ok := tt.session.SelectedCategory()
			assert.Equal(t, tt.hasCategory, ok)
			assert.Equal(t, ok, tt.session.Phase() == PhaseAwaitingGoalTitle)
			if ok {
				assert.Equal(t, work, category)
			}
		})
	}
}

func TestSession_CategoryIsCopied(t *testing.T) {
	category := Category{ID: 1, Title: "Work"}
	session := NewGoalTitleSession(42, category)

	category.Title = "Home"

	selected, ok := session.SelectedCategory()
	assert.True(t, ok)
	assert.Equal(t, "Work", selected.Title)
	assert.Equal(t, int64(42), session.ChatID())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "awaiting_category_selection", PhaseAwaitingCategorySelection.String())
	assert.Equal(t, "awaiting_goal_title", PhaseAwaitingGoalTitle.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

func TestBotUser_IsVerified(t *testing.T) {
	accountID := int64(7)

	assert.False(t, (&BotUser{ChatID: 1}).IsVerified())
	assert.True(t, (&BotUser{ChatID: 1, AccountID: &accountID}).IsVerified())

	var nilUser *BotUser
	assert.False(t, nilUser.IsVerified())
}
