package domain

import "time"

// BotUser is the bot's record of a chat participant
type BotUser struct {
	ID               int64
	ChatID           int64
	Username         string
	AccountID        *int64
	VerificationCode string
	CodeIssuedAt     *time.Time
	CreatedAt        time.Time
}

// IsVerified reports whether the chat is linked to a site account
func (u *BotUser) IsVerified() bool {
	return u != nil && u.AccountID != nil
}
