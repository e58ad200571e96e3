package catalog

import (
	"context"

	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	"github.com/glowmart/cosmetics-backend/pkg/pagination"
)

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	BrandID uint64
	Name    string
}

// Store is the persistence surface of the catalog service. The GORM
// Repository implements it; tests swap in a fake. WithTx hands the callback a
// Store bound to the transaction, so multi-step invariants run atomically.
type Store interface {
	WithTx(ctx context.Context, fn func(Store) error) error

	ListBrands(ctx context.Context, paging pagination.Paging) ([]models.Brand, int64, error)
	AllActiveBrands(ctx context.Context) ([]models.Brand, error)
	ActiveBrandByID(ctx context.Context, id uint64) (*models.Brand, error)
	ActiveBrandByName(ctx context.Context, name string) (*models.Brand, error)
	ActiveBrandBySequence(ctx context.Context, sequence int32) (*models.Brand, error)
	ActiveBrandsByNames(ctx context.Context, names []string) ([]models.Brand, error)
	MaxActiveBrandSequence(ctx context.Context) (int32, error)
	InsertBrands(ctx context.Context, brands []*models.Brand) error
	UpdateBrandName(ctx context.Context, id uint64, name, modifier string) (int64, error)
	UpdateBrandSequence(ctx context.Context, id uint64, sequence int32, modifier string) (int64, error)
	CountActiveBrands(ctx context.Context, ids []uint64) (int64, error)
	RetireBrand(ctx context.Context, id uint64, modifier string) (int64, error)

	ListProducts(ctx context.Context, filter ProductFilter, paging pagination.Paging) ([]models.Product, int64, error)
	ActiveProductByID(ctx context.Context, id uint64) (*models.Product, error)
	CountActiveProducts(ctx context.Context, ids []uint64) (int64, error)
	CountActiveProductsByBrand(ctx context.Context, brandID uint64) (int64, error)
	InsertProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id uint64, fields map[string]any) (int64, error)
	RetireProduct(ctx context.Context, id uint64, modifier string) (int64, error)

	ActiveHotProducts(ctx context.Context) ([]models.Product, error)
	RetireHotProducts(ctx context.Context, modifier string) error
	RetireHotProductsByProduct(ctx context.Context, productID uint64, modifier string) error
	InsertHotProducts(ctx context.Context, rows []*models.HotProduct) error
}
