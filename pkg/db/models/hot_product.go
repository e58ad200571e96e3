package models

import (
	"time"

	"github.com/glowmart/cosmetics-backend/pkg/enums"
)

// HotProduct flags a product as part of the current hot list. The list is
// replaced wholesale: old rows are retired before new ones are inserted.
type HotProduct struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	ProductID uint64          `gorm:"column:product_id;not null"`
	Status    enums.RowStatus `gorm:"column:status;not null;default:0"`
	Creator   string          `gorm:"column:creator;not null;default:''"`
	Modifier  *string         `gorm:"column:modifier"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (HotProduct) TableName() string {
	return "hot_product"
}
