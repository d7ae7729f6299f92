package domain

import (
	"context"
	"strconv"
)

// TelegramUser is the identity object embedded in the signed init data
// ("user" field of the Telegram Web App payload).
type TelegramUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
}

// Identity returns the stable string form of the Telegram user id, used as
// the primary key for all game state.
func (u TelegramUser) Identity() string {
	return strconv.FormatInt(u.ID, 10)
}

type ProfileResponse struct {
	User    User `json:"user"`
	Created bool `json:"created"`
}

type AuthRepository interface {
	UpsertUser(ctx context.Context, tgUser TelegramUser) (*User, bool, error)
}
