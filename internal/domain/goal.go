package domain

import "time"

// MaxTitleLength is the longest goal title the store accepts, in characters
const MaxTitleLength = 255

// GoalStatus mirrors the status column of the goals table
type GoalStatus int

const (
	GoalStatusToDo GoalStatus = iota + 1
	GoalStatusInProgress
	GoalStatusDone
	GoalStatusArchived
)

// GoalPriority mirrors the priority column of the goals table
type GoalPriority int

const (
	GoalPriorityLow GoalPriority = iota + 1
	GoalPriorityMedium
	GoalPriorityHigh
	GoalPriorityCritical
)

// Category is a goal category owned by an account
type Category struct {
	ID        int64
	Title     string
	AccountID int64
}

// Goal represents a single goal
type Goal struct {
	ID         int64
	Title      string
	CategoryID int64
	AccountID  int64
	Status     GoalStatus
	Priority   GoalPriority
	CreatedAt  time.Time
}
