package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowmart/cosmetics-backend/pkg/db"
	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	"github.com/glowmart/cosmetics-backend/pkg/enums"
	"github.com/glowmart/cosmetics-backend/pkg/pagination"
	"gorm.io/gorm"
)

// ErrRowNotFound is returned by single-row lookups when no active row matches.
var ErrRowNotFound = errors.New("row not found")

// Repository is the GORM-backed Store implementation.
type Repository struct {
	conn *gorm.DB
}

func NewRepository(client *db.Client) (*Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	return &Repository{conn: client.DB()}, nil
}

// WithTx runs fn against a Store bound to a single transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(Store) error) error {
	return r.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{conn: tx})
	})
}

func (r *Repository) active(ctx context.Context, model any) *gorm.DB {
	return r.conn.WithContext(ctx).Model(model).Where("status = ?", enums.RowStatusActive)
}

// --- brands ---

func (r *Repository) ListBrands(ctx context.Context, paging pagination.Paging) ([]models.Brand, int64, error) {
	var total int64
	if err := r.active(ctx, &models.Brand{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting brands: %w", err)
	}

	var brands []models.Brand
	err := r.active(ctx, &models.Brand{}).
		Order("sequence ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&brands).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing brands: %w", err)
	}
	return brands, total, nil
}

func (r *Repository) AllActiveBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.active(ctx, &models.Brand{}).Order("sequence ASC").Find(&brands).Error
	if err != nil {
		return nil, fmt.Errorf("listing all brands: %w", err)
	}
	return brands, nil
}

func (r *Repository) ActiveBrandByID(ctx context.Context, id uint64) (*models.Brand, error) {
	var brand models.Brand
	err := r.active(ctx, &models.Brand{}).Where("id = ?", id).First(&brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying brand by id: %w", err)
	}
	return &brand, nil
}

func (r *Repository) ActiveBrandByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	err := r.active(ctx, &models.Brand{}).Where("name = ?", name).First(&brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying brand by name: %w", err)
	}
	return &brand, nil
}

func (r *Repository) ActiveBrandBySequence(ctx context.Context, sequence int32) (*models.Brand, error) {
	var brand models.Brand
	err := r.active(ctx, &models.Brand{}).Where("sequence = ?", sequence).First(&brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying brand by sequence: %w", err)
	}
	return &brand, nil
}

func (r *Repository) ActiveBrandsByNames(ctx context.Context, names []string) ([]models.Brand, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var brands []models.Brand
	err := r.active(ctx, &models.Brand{}).Where("name IN ?", names).Find(&brands).Error
	if err != nil {
		return nil, fmt.Errorf("querying brands by names: %w", err)
	}
	return brands, nil
}

func (r *Repository) MaxActiveBrandSequence(ctx context.Context) (int32, error) {
	var max int32
	err := r.active(ctx, &models.Brand{}).Select("COALESCE(MAX(sequence), 0)").Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("querying max brand sequence: %w", err)
	}
	return max, nil
}

func (r *Repository) InsertBrands(ctx context.Context, brands []*models.Brand) error {
	if len(brands) == 0 {
		return nil
	}
	if err := r.conn.WithContext(ctx).Create(brands).Error; err != nil {
		return fmt.Errorf("inserting brands: %w", err)
	}
	return nil
}

func (r *Repository) UpdateBrandName(ctx context.Context, id uint64, name, modifier string) (int64, error) {
	result := r.active(ctx, &models.Brand{}).Where("id = ?", id).Updates(map[string]any{
		"name":     name,
		"modifier": modifier,
	})
	if result.Error != nil {
		return 0, fmt.Errorf("updating brand name: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *Repository) UpdateBrandSequence(ctx context.Context, id uint64, sequence int32, modifier string) (int64, error) {
	result := r.active(ctx, &models.Brand{}).Where("id = ?", id).Updates(map[string]any{
		"sequence": sequence,
		"modifier": modifier,
	})
	if result.Error != nil {
		return 0, fmt.Errorf("updating brand sequence: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *Repository) CountActiveBrands(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.active(ctx, &models.Brand{}).Where("id IN ?", ids).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting brands by ids: %w", err)
	}
	return count, nil
}

func (r *Repository) RetireBrand(ctx context.Context, id uint64, modifier string) (int64, error) {
	result := r.active(ctx, &models.Brand{}).Where("id = ?", id).Updates(map[string]any{
		"status":   enums.RowStatusRetired,
		"modifier": modifier,
	})
	if result.Error != nil {
		return 0, fmt.Errorf("retiring brand: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// --- products ---

func (r *Repository) ListProducts(ctx context.Context, filter ProductFilter, paging pagination.Paging) ([]models.Product, int64, error) {
	base := func() *gorm.DB {
		q := r.active(ctx, &models.Product{})
		if filter.BrandID != 0 {
			q = q.Where("brand_id = ?", filter.BrandID)
		}
		if filter.Name != "" {
			q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	var products []models.Product
	err := base().
		Order("sequence ASC, id ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	return products, total, nil
}

func (r *Repository) ActiveProductByID(ctx context.Context, id uint64) (*models.Product, error) {
	var product models.Product
	err := r.active(ctx, &models.Product{}).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}
	return &product, nil
}

func (r *Repository) CountActiveProducts(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.active(ctx, &models.Product{}).Where("id IN ?", ids).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting products by ids: %w", err)
	}
	return count, nil
}

func (r *Repository) CountActiveProductsByBrand(ctx context.Context, brandID uint64) (int64, error) {
	var count int64
	err := r.active(ctx, &models.Product{}).Where("brand_id = ?", brandID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting products by brand: %w", err)
	}
	return count, nil
}

func (r *Repository) InsertProduct(ctx context.Context, product *models.Product) error {
	if err := r.conn.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

func (r *Repository) UpdateProduct(ctx context.Context, id uint64, fields map[string]any) (int64, error) {
	result := r.active(ctx, &models.Product{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return 0, fmt.Errorf("updating product: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *Repository) RetireProduct(ctx context.Context, id uint64, modifier string) (int64, error) {
	result := r.active(ctx, &models.Product{}).Where("id = ?", id).Updates(map[string]any{
		"status":   enums.RowStatusRetired,
		"modifier": modifier,
	})
	if result.Error != nil {
		return 0, fmt.Errorf("retiring product: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// --- hot products ---

func (r *Repository) ActiveHotProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.conn.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN hot_product ON hot_product.product_id = product.id").
		Where("hot_product.status = ?", enums.RowStatusActive).
		Where("product.status = ?", enums.RowStatusActive).
		Order("hot_product.id ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("listing hot products: %w", err)
	}
	return products, nil
}

func (r *Repository) RetireHotProducts(ctx context.Context, modifier string) error {
	err := r.active(ctx, &models.HotProduct{}).Updates(map[string]any{
		"status":   enums.RowStatusRetired,
		"modifier": modifier,
	}).Error
	if err != nil {
		return fmt.Errorf("retiring hot products: %w", err)
	}
	return nil
}

func (r *Repository) RetireHotProductsByProduct(ctx context.Context, productID uint64, modifier string) error {
	err := r.active(ctx, &models.HotProduct{}).
		Where("product_id = ?", productID).
		Updates(map[string]any{
			"status":   enums.RowStatusRetired,
			"modifier": modifier,
		}).Error
	if err != nil {
		return fmt.Errorf("retiring hot products for product: %w", err)
	}
	return nil
}

func (r *Repository) InsertHotProducts(ctx context.Context, rows []*models.HotProduct) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.conn.WithContext(ctx).Create(rows).Error; err != nil {
		return fmt.Errorf("inserting hot products: %w", err)
	}
	return nil
}
