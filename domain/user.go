package domain

import (
	"context"
	"time"
)

type User struct {
	UserID        string    `gorm:"type:varchar(64);primaryKey;column:user_id" json:"user_id"`
	Username      string    `gorm:"type:varchar(255);column:username;index" json:"username"`
	FirstName     string    `gorm:"type:varchar(255);column:first_name" json:"first_name"`
	LastName      string    `gorm:"type:varchar(255);column:last_name" json:"last_name"`
	Balance       int       `gorm:"type:int;not null;column:balance" json:"balance"`
	TotalSpins    int       `gorm:"type:int;not null;column:total_spins" json:"total_spins"`
	TotalWins     int       `gorm:"type:int;not null;column:total_wins" json:"total_wins"`
	WinStreak     int       `gorm:"type:int;not null;column:win_streak" json:"win_streak"`
	CurrentStreak int       `gorm:"type:int;not null;column:current_streak" json:"current_streak"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	LastActive    time.Time `gorm:"column:last_active" json:"last_active"`
}

func (User) TableName() string {
	return "users"
}

type InventoryItem struct {
	ID        int       `gorm:"primary_key;auto_increment;column:id" json:"id"`
	UserID    string    `gorm:"type:varchar(64);column:user_id;not null;index" json:"user_id"`
	ItemType  string    `gorm:"type:varchar(64);column:item_type;not null" json:"item_type"`
	Amount    int       `gorm:"type:int;not null;column:amount" json:"amount"`
	GifURL    *string   `gorm:"type:varchar(255);column:gif_url" json:"gif_url"`
	Rarity    string    `gorm:"type:varchar(32);column:rarity" json:"rarity"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	IsClaimed bool      `gorm:"column:is_claimed;not null" json:"is_claimed"`
	User      User      `gorm:"foreignkey:UserID;references:UserID" json:"-"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

type SpinHistory struct {
	ID        int       `gorm:"primary_key;auto_increment;column:id" json:"id"`
	UserID    string    `gorm:"type:varchar(64);column:user_id;not null;index" json:"user_id"`
	Result    string    `gorm:"type:varchar(64);column:result;not null" json:"result"`
	IsWin     bool      `gorm:"column:is_win;not null" json:"is_win"`
	BetChoice string    `gorm:"type:varchar(64);column:bet_choice;not null" json:"bet_choice"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	User      User      `gorm:"foreignkey:UserID;references:UserID" json:"-"`
}

func (SpinHistory) TableName() string {
	return "spin_history"
}

type SpinRequest struct {
	BetChoice string `json:"bet_choice"`
}

type SpinResponse struct {
	Result        string         `json:"result"`
	IsWin         bool           `json:"is_win"`
	RewardAdded   bool           `json:"reward_added"`
	NewBalance    int            `json:"new_balance"`
	InventoryItem *InventoryItem `json:"inventory_item,omitempty"`
}

type ClaimResponse struct {
	Success       bool `json:"success"`
	NewBalance    int  `json:"new_balance"`
	ClaimedAmount int  `json:"claimed_amount"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminUserUpdate carries a partial update: nil fields are left unchanged.
type AdminUserUpdate struct {
	Balance    *int `json:"balance"`
	TotalSpins *int `json:"total_spins"`
	TotalWins  *int `json:"total_wins"`
}

type AdminStatsResponse struct {
	TotalUsers int64   `json:"total_users"`
	TotalSpins int64   `json:"total_spins"`
	TotalWins  int64   `json:"total_wins"`
	WinRate    float64 `json:"win_rate"`
}

type GameRepository interface {
	ExecuteSpin(ctx context.Context, tgUser TelegramUser, spinCost int, result string, isWin bool, betChoice string, item *InventoryItem) (int, error)
	GetInventory(ctx context.Context, userID string) ([]InventoryItem, error)
	ClaimItem(ctx context.Context, userID string, itemID int) (*ClaimResponse, error)
}

type AdminRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, userID string, update AdminUserUpdate) (*User, error)
	DeleteInventoryItem(ctx context.Context, userID string, itemID int) error
	CountStats(ctx context.Context) (totalUsers int64, totalSpins int64, totalWins int64, err error)
}
