package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"goalbot/internal/domain"
)

const botUserColumns = `id, chat_id, username, account_id, verification_code, code_issued_at, created_at`

// BotUserRepo implements repository.BotUserRepository
type BotUserRepo struct {
	db *sql.DB
}

// NewBotUserRepo creates a new bot user repository
func NewBotUserRepo(db *sql.DB) *BotUserRepo {
	return &BotUserRepo{db: db}
}

// GetOrCreate returns the bot user for chatID, creating it on first contact
func (r *BotUserRepo) GetOrCreate(ctx context.Context, chatID int64, username string) (*domain.BotUser, error) {
	insert := `
		INSERT INTO bot_users (chat_id, username)
		VALUES ($1, NULLIF($2, ''))
		ON CONFLICT (chat_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, insert, chatID, username); err != nil {
		return nil, err
	}

	query := `SELECT ` + botUserColumns + ` FROM bot_users WHERE chat_id = $1`
	u, err := scanBotUser(r.db.QueryRowContext(ctx, query, chatID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBotUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

// SetVerificationCode stores a fresh code for a bot user that is not linked yet
func (r *BotUserRepo) SetVerificationCode(ctx context.Context, id int64, code string) error {
	query := `
		UPDATE bot_users
		SET verification_code = $2, code_issued_at = NOW()
		WHERE id = $1 AND account_id IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, code)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBotUserNotFound
	}

	return nil
}

// LinkByVerificationCode binds the bot user holding code to accountID and clears the code
func (r *BotUserRepo) LinkByVerificationCode(ctx context.Context, code string, accountID int64) (*domain.BotUser, error) {
	query := `
		UPDATE bot_users
		SET account_id = $2, verification_code = NULL, code_issued_at = NULL
		WHERE verification_code = $1
		RETURNING ` + botUserColumns

	u, err := scanBotUser(r.db.QueryRowContext(ctx, query, code, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidVerificationCode
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

// ClearStaleCodes drops unused codes issued more than olderThan ago.
// A cleared code is issued again the next time the chat writes to the bot.
func (r *BotUserRepo) ClearStaleCodes(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		UPDATE bot_users
		SET verification_code = NULL, code_issued_at = NULL
		WHERE account_id IS NULL
			AND code_issued_at < NOW() - INTERVAL '1 second' * $1
	`
	res, err := r.db.ExecContext(ctx, query, int64(olderThan/time.Second))
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBotUser(row rowScanner) (*domain.BotUser, error) {
	var (
		u         domain.BotUser
		username  sql.NullString
		accountID sql.NullInt64
		code      sql.NullString
		issuedAt  sql.NullTime
	)

	if err := row.Scan(&u.ID, &u.ChatID, &username, &accountID, &code, &issuedAt, &u.CreatedAt); err != nil {
		return nil, err
	}

	u.Username = username.String
	u.VerificationCode = code.String
	if accountID.Valid {
		u.AccountID = &accountID.Int64
	}
	if issuedAt.Valid {
		u.CodeIssuedAt = &issuedAt.Time
	}

	return &u, nil
}
