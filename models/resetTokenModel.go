package models

import (
	"time"

	"gorm.io/gorm"
)

type PasswordResetToken struct {
	gorm.Model
	UserID    uint      `json:"userId"`
	Token     string    `json:"-" gorm:"size:191;uniqueIndex"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
}
