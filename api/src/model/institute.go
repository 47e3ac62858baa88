package model

import "time"

type Institute struct {
	Id            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletAddress string    `gorm:"uniqueIndex;not null" json:"wallet_address"`
	DisplayName   string    `gorm:"not null" json:"display_name"`
	ContactEmail  string    `json:"contact_email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
