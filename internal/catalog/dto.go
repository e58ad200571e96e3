package catalog

import (
	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// BrandView is the API projection of a brand row.
type BrandView struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Sequence int32  `json:"sequence"`
}

func brandView(brand models.Brand) BrandView {
	return BrandView{ID: brand.ID, Name: brand.Name, Sequence: brand.Sequence}
}

func brandViews(brands []models.Brand) []BrandView {
	views := make([]BrandView, 0, len(brands))
	for _, brand := range brands {
		views = append(views, brandView(brand))
	}
	return views
}

// CreateBrandsInput carries a batch of brand names to create in one shot.
type CreateBrandsInput struct {
	Names []string `json:"names" validate:"required,min=1,dive,required,max=128"`
}

// UpdateBrandInput renames an existing brand and optionally moves its
// sequence slot.
type UpdateBrandInput struct {
	Name     string `json:"name" validate:"required,max=128"`
	Sequence *int32 `json:"sequence" validate:"omitempty,min=1"`
}

// BrandSequence assigns a display slot to one brand.
type BrandSequence struct {
	ID       uint64 `json:"id" validate:"required"`
	Sequence int32  `json:"sequence" validate:"required,min=1"`
}

// ReorderBrandsInput carries the (brand id, sequence) assignments to apply.
type ReorderBrandsInput struct {
	Items []BrandSequence `json:"items" validate:"required,min=1,dive"`
}

// ProductView is the API projection of a product row.
type ProductView struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Alias       string          `json:"alias"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	BrandID     uint64          `json:"brand_id"`
	Spec        string          `json:"spec"`
	Kind        string          `json:"kind"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	ImportPrice decimal.Decimal `json:"import_price"`
	Sequence    int32           `json:"sequence"`
	JDID        string          `json:"jd_id"`
	JDURL       string          `json:"jd_url"`
	ImgURL      string          `json:"img_url"`
	Comment     string          `json:"comment"`
}

func productView(product models.Product) ProductView {
	return ProductView{
		ID:          product.ID,
		Name:        product.Name,
		Alias:       product.Alias,
		Title:       product.Title,
		Subtitle:    product.Subtitle,
		BrandID:     product.BrandID,
		Spec:        product.Spec,
		Kind:        product.Kind,
		SellPrice:   product.SellPrice,
		ImportPrice: product.ImportPrice,
		Sequence:    product.Sequence,
		JDID:        product.JDID,
		JDURL:       product.JDURL,
		ImgURL:      product.ImgURL,
		Comment:     product.Comment,
	}
}

func productViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, productView(product))
	}
	return views
}

// CreateProductInput carries a new product. The brand is addressed by name;
// the service resolves it to an active brand id.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required,max=256"`
	Alias       string          `json:"alias" validate:"max=256"`
	Title       string          `json:"title" validate:"required,max=512"`
	Subtitle    string          `json:"subtitle" validate:"max=512"`
	BrandName   string          `json:"brand_name" validate:"required,max=128"`
	Spec        string          `json:"spec" validate:"max=256"`
	Kind        string          `json:"kind" validate:"max=128"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	ImportPrice decimal.Decimal `json:"import_price"`
	Sequence    int32           `json:"sequence"`
	JDID        string          `json:"jd_id" validate:"max=64"`
	JDURL       string          `json:"jd_url" validate:"max=1024"`
	ImgURL      string          `json:"img_url" validate:"max=1024"`
	Comment     string          `json:"comment" validate:"max=1024"`
	Status      *int8           `json:"status" validate:"omitempty,oneof=0 1"`
}

// UpdateProductInput replaces the mutable fields of an active product.
type UpdateProductInput struct {
	Name        string          `json:"name" validate:"required,max=256"`
	Alias       string          `json:"alias" validate:"max=256"`
	Title       string          `json:"title" validate:"required,max=512"`
	Subtitle    string          `json:"subtitle" validate:"max=512"`
	BrandName   string          `json:"brand_name" validate:"required,max=128"`
	Spec        string          `json:"spec" validate:"max=256"`
	Kind        string          `json:"kind" validate:"max=128"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	ImportPrice decimal.Decimal `json:"import_price"`
	Sequence    int32           `json:"sequence"`
	JDID        string          `json:"jd_id" validate:"max=64"`
	JDURL       string          `json:"jd_url" validate:"max=1024"`
	ImgURL      string          `json:"img_url" validate:"max=1024"`
	Comment     string          `json:"comment" validate:"max=1024"`
	Status      *int8           `json:"status" validate:"omitempty,oneof=0 1"`
}

// ListProductsQuery holds the admin product listing filters.
type ListProductsQuery struct {
	BrandID uint64
	Name    string
	Offset  int
	Limit   int
}

// ReplaceHotProductsInput is the full replacement list for the hot products
// strip. An empty list clears it.
type ReplaceHotProductsInput struct {
	ProductIDs []uint64 `json:"product_ids"`
}
