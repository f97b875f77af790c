package model

import "time"

// RefreshTokenは平文を保存しない。sha256ハッシュのみ持つ。
type RefreshToken struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    int64  `gorm:"not null;index"`
	TokenHash string `gorm:"type:varchar(64);not null;uniqueIndex"`
	ExpiresAt time.Time
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}
