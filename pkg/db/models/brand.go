package models

import (
	"time"

	"github.com/glowmart/cosmetics-backend/pkg/enums"
)

// Brand is a catalog brand. Name and sequence are unique among active rows
// only; partial unique indexes in the schema enforce both.
type Brand struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:text;not null"`
	Sequence  int32           `gorm:"column:sequence;not null"`
	Status    enums.RowStatus `gorm:"column:status;not null;default:0"`
	Creator   string          `gorm:"column:creator;not null;default:''"`
	Modifier  *string         `gorm:"column:modifier"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Brand) TableName() string {
	return "brand"
}
