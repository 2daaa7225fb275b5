package postgres

import (
	"context"
	"database/sql"
	"errors"

	"goalbot/internal/domain"
)

// GoalRepo implements repository.GoalRepository
type GoalRepo struct {
	db *sql.DB
}

// NewGoalRepo creates a new goal repository
func NewGoalRepo(db *sql.DB) *GoalRepo {
	return &GoalRepo{db: db}
}

// ListActiveCategories returns the account's categories that are not deleted
func (r *GoalRepo) ListActiveCategories(ctx context.Context, accountID int64) ([]domain.Category, error) {
	query := `
		SELECT id, title, account_id
		FROM goal_categories
		WHERE account_id = $1 AND is_deleted = FALSE
		ORDER BY title, created_at
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.AccountID); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// ListActiveGoals returns the account's goals that are not archived
// and whose category is not deleted
func (r *GoalRepo) ListActiveGoals(ctx context.Context, accountID int64) ([]domain.Goal, error) {
	query := `
		SELECT g.id, g.title, g.category_id, g.account_id, g.status, g.priority, g.created_at
		FROM goals g
		JOIN goal_categories c ON c.id = g.category_id
		WHERE g.account_id = $1
			AND g.status <> $2
			AND c.is_deleted = FALSE
		ORDER BY g.title
	`

	rows, err := r.db.QueryContext(ctx, query, accountID, domain.GoalStatusArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.CategoryID, &g.AccountID, &g.Status, &g.Priority, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// CreateGoal inserts a goal into an active category owned by the account.
// Returns domain.ErrCategoryNotFound if the category was deleted or belongs to someone else.
func (r *GoalRepo) CreateGoal(ctx context.Context, accountID, categoryID int64, title string) (*domain.Goal, error) {
	query := `
		INSERT INTO goals (title, category_id, account_id)
		SELECT $1, c.id, c.account_id
		FROM goal_categories c
		WHERE c.id = $2 AND c.account_id = $3 AND c.is_deleted = FALSE
		RETURNING id, title, category_id, account_id, status, priority, created_at
	`

	var g domain.Goal
	err := r.db.QueryRowContext(ctx, query, title, categoryID, accountID).Scan(
		&g.ID, &g.Title, &g.CategoryID, &g.AccountID, &g.Status, &g.Priority, &g.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &g, nil
}
