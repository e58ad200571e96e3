package models

import (
	"time"

	"github.com/glowmart/cosmetics-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is a catalog item belonging to a brand. BrandID must reference an
// active brand at creation time; the service resolves it from the submitted
// brand name.
type Product struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:text;not null"`
	Alias       string          `gorm:"type:text;not null;default:''"`
	Title       string          `gorm:"type:text;not null;default:''"`
	Subtitle    string          `gorm:"type:text;not null;default:''"`
	BrandID     uint64          `gorm:"column:brand_id;not null"`
	Spec        string          `gorm:"type:text;not null;default:''"`
	Kind        string          `gorm:"type:text;not null;default:''"`
	SellPrice   decimal.Decimal `gorm:"column:sell_price;type:numeric(10,2);not null"`
	ImportPrice decimal.Decimal `gorm:"column:import_price;type:numeric(10,2);not null"`
	Sequence    int32           `gorm:"column:sequence;not null;default:0"`
	JDID        string          `gorm:"column:jd_id;type:text;not null;default:''"`
	JDURL       string          `gorm:"column:jd_url;type:text;not null;default:''"`
	ImgURL      string          `gorm:"column:img_url;type:text;not null;default:''"`
	Status      enums.RowStatus `gorm:"column:status;not null;default:0"`
	Comment     string          `gorm:"type:text;not null;default:''"`
	Creator     string          `gorm:"column:creator;not null;default:''"`
	Modifier    *string         `gorm:"column:modifier"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "product"
}
