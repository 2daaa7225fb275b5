package domain

// Phase is the step of the goal dialog a chat is in
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingCategorySelection
	PhaseAwaitingGoalTitle
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingCategorySelection:
		return "awaiting_category_selection"
	case PhaseAwaitingGoalTitle:
		return "awaiting_goal_title"
	default:
		return "unknown"
	}
}

// Session holds the dialog state of one chat.
//
// Fields are unexported so a session can only be built through the
// constructors below: a selected category exists only in the
// awaiting-goal-title phase.
type Session struct {
	chatID   int64
	phase    Phase
	category *Category
}

// NewIdleSession returns a session with no pending dialog
func NewIdleSession(chatID int64) Session {
	return Session{chatID: chatID, phase: PhaseIdle}
}

// NewCategorySelectionSession returns a session waiting for a category title
func NewCategorySelectionSession(chatID int64) Session {
	return Session{chatID: chatID, phase: PhaseAwaitingCategorySelection}
}

// NewGoalTitleSession returns a session waiting for the title of a goal in category
func NewGoalTitleSession(chatID int64, category Category) Session {
	return Session{chatID: chatID, phase: PhaseAwaitingGoalTitle, category: &category}
}

// ChatID returns the chat the session belongs to
func (s Session) ChatID() int64 {
	return s.chatID
}

// Phase returns the current dialog phase
func (s Session) Phase() Phase {
	return s.phase
}

// SelectedCategory returns the chosen category; ok is false outside PhaseAwaitingGoalTitle
func (s Session) SelectedCategory() (Category, bool) {
	if s.category == nil {
		return Category{}, false
	}
	return *s.category, true
}
