package models

import (
	"time"

	"github.com/glowmart/cosmetics-backend/pkg/enums"
)

// Operator is an administrative actor. Rows are created by the bootstrap
// "admin" operator and never deleted; only the password hash rotates.
type Operator struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	Username     string          `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string          `gorm:"column:password;not null"`
	Status       enums.RowStatus `gorm:"column:status;not null;default:0"`
	Creator      string          `gorm:"column:creator;not null;default:''"`
	Modifier     *string         `gorm:"column:modifier"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Operator) TableName() string {
	return "admin_user"
}
