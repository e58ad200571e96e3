package catalog

import (
	"context"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/glowmart/cosmetics-backend/pkg/config"
	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	"github.com/glowmart/cosmetics-backend/pkg/enums"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
	"github.com/glowmart/cosmetics-backend/pkg/pagination"
	"github.com/glowmart/cosmetics-backend/pkg/redis"
)

// fakeStore is an in-memory Store for service tests. WithTx runs the
// callback against the same state; rollback fidelity is the repository's
// concern, not the service's.
type fakeStore struct {
	brands   map[uint64]*models.Brand
	products map[uint64]*models.Product
	hot      []*models.HotProduct
	nextID   uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		brands:   make(map[uint64]*models.Brand),
		products: make(map[uint64]*models.Product),
		nextID:   1,
	}
}

func (f *fakeStore) allocID() uint64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) addBrand(name string, sequence int32) *models.Brand {
	brand := &models.Brand{ID: f.allocID(), Name: name, Sequence: sequence}
	f.brands[brand.ID] = brand
	return brand
}

func (f *fakeStore) addProduct(name string, brandID uint64) *models.Product {
	product := &models.Product{ID: f.allocID(), Name: name, BrandID: brandID}
	f.products[product.ID] = product
	return product
}

func (f *fakeStore) WithTx(_ context.Context, fn func(Store) error) error {
	return fn(f)
}

func (f *fakeStore) ListBrands(_ context.Context, paging pagination.Paging) ([]models.Brand, int64, error) {
	var active []models.Brand
	for _, brand := range f.brands {
		if brand.Status == enums.RowStatusActive {
			active = append(active, *brand)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Sequence < active[j].Sequence })
	total := int64(len(active))
	if paging.Offset >= len(active) {
		return nil, total, nil
	}
	end := paging.Offset + paging.Limit
	if end > len(active) {
		end = len(active)
	}
	return active[paging.Offset:end], total, nil
}

func (f *fakeStore) AllActiveBrands(_ context.Context) ([]models.Brand, error) {
	var active []models.Brand
	for _, brand := range f.brands {
		if brand.Status == enums.RowStatusActive {
			active = append(active, *brand)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Sequence < active[j].Sequence })
	return active, nil
}

func (f *fakeStore) ActiveBrandBySequence(_ context.Context, sequence int32) (*models.Brand, error) {
	for _, brand := range f.brands {
		if brand.Status == enums.RowStatusActive && brand.Sequence == sequence {
			copied := *brand
			return &copied, nil
		}
	}
	return nil, ErrRowNotFound
}

func (f *fakeStore) ActiveBrandByID(_ context.Context, id uint64) (*models.Brand, error) {
	if brand, ok := f.brands[id]; ok && brand.Status == enums.RowStatusActive {
		copied := *brand
		return &copied, nil
	}
	return nil, ErrRowNotFound
}

func (f *fakeStore) ActiveBrandByName(_ context.Context, name string) (*models.Brand, error) {
	for _, brand := range f.brands {
		if brand.Status == enums.RowStatusActive && brand.Name == name {
			copied := *brand
			return &copied, nil
		}
	}
	return nil, ErrRowNotFound
}

func (f *fakeStore) ActiveBrandsByNames(_ context.Context, names []string) ([]models.Brand, error) {
	var out []models.Brand
	for _, brand := range f.brands {
		if brand.Status != enums.RowStatusActive {
			continue
		}
		for _, name := range names {
			if brand.Name == name {
				out = append(out, *brand)
			}
		}
	}
	return out, nil
}

func (f *fakeStore) MaxActiveBrandSequence(_ context.Context) (int32, error) {
	var max int32
	for _, brand := range f.brands {
		if brand.Status == enums.RowStatusActive && brand.Sequence > max {
			max = brand.Sequence
		}
	}
	return max, nil
}

func (f *fakeStore) InsertBrands(_ context.Context, brands []*models.Brand) error {
	for _, brand := range brands {
		brand.ID = f.allocID()
		copied := *brand
		f.brands[brand.ID] = &copied
	}
	return nil
}

func (f *fakeStore) UpdateBrandName(_ context.Context, id uint64, name, modifier string) (int64, error) {
	brand, ok := f.brands[id]
	if !ok || brand.Status != enums.RowStatusActive {
		return 0, nil
	}
	brand.Name = name
	brand.Modifier = &modifier
	return 1, nil
}

func (f *fakeStore) UpdateBrandSequence(_ context.Context, id uint64, sequence int32, modifier string) (int64, error) {
	brand, ok := f.brands[id]
	if !ok || brand.Status != enums.RowStatusActive {
		return 0, nil
	}
	brand.Sequence = sequence
	brand.Modifier = &modifier
	return 1, nil
}

func (f *fakeStore) CountActiveBrands(_ context.Context, ids []uint64) (int64, error) {
	var count int64
	for _, id := range ids {
		if brand, ok := f.brands[id]; ok && brand.Status == enums.RowStatusActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) RetireBrand(_ context.Context, id uint64, modifier string) (int64, error) {
	brand, ok := f.brands[id]
	if !ok || brand.Status != enums.RowStatusActive {
		return 0, nil
	}
	brand.Status = enums.RowStatusRetired
	brand.Modifier = &modifier
	return 1, nil
}

func (f *fakeStore) ListProducts(_ context.Context, filter ProductFilter, paging pagination.Paging) ([]models.Product, int64, error) {
	var active []models.Product
	for _, product := range f.products {
		if product.Status != enums.RowStatusActive {
			continue
		}
		if filter.BrandID != 0 && product.BrandID != filter.BrandID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Name)) {
			continue
		}
		active = append(active, *product)
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].Sequence != active[j].Sequence {
			return active[i].Sequence < active[j].Sequence
		}
		return active[i].ID < active[j].ID
	})
	total := int64(len(active))
	if paging.Offset >= len(active) {
		return nil, total, nil
	}
	end := paging.Offset + paging.Limit
	if end > len(active) {
		end = len(active)
	}
	return active[paging.Offset:end], total, nil
}

func (f *fakeStore) ActiveProductByID(_ context.Context, id uint64) (*models.Product, error) {
	if product, ok := f.products[id]; ok && product.Status == enums.RowStatusActive {
		copied := *product
		return &copied, nil
	}
	return nil, ErrRowNotFound
}

func (f *fakeStore) CountActiveProducts(_ context.Context, ids []uint64) (int64, error) {
	var count int64
	for _, id := range ids {
		if product, ok := f.products[id]; ok && product.Status == enums.RowStatusActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) CountActiveProductsByBrand(_ context.Context, brandID uint64) (int64, error) {
	var count int64
	for _, product := range f.products {
		if product.Status == enums.RowStatusActive && product.BrandID == brandID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) InsertProduct(_ context.Context, product *models.Product) error {
	product.ID = f.allocID()
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeStore) UpdateProduct(_ context.Context, id uint64, fields map[string]any) (int64, error) {
	product, ok := f.products[id]
	if !ok || product.Status != enums.RowStatusActive {
		return 0, nil
	}
	if name, ok := fields["name"].(string); ok {
		product.Name = name
	}
	if brandID, ok := fields["brand_id"].(uint64); ok {
		product.BrandID = brandID
	}
	if status, ok := fields["status"].(enums.RowStatus); ok {
		product.Status = status
	}
	if modifier, ok := fields["modifier"].(string); ok {
		product.Modifier = &modifier
	}
	return 1, nil
}

func (f *fakeStore) RetireProduct(_ context.Context, id uint64, modifier string) (int64, error) {
	product, ok := f.products[id]
	if !ok || product.Status != enums.RowStatusActive {
		return 0, nil
	}
	product.Status = enums.RowStatusRetired
	product.Modifier = &modifier
	return 1, nil
}

func (f *fakeStore) ActiveHotProducts(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, row := range f.hot {
		if row.Status != enums.RowStatusActive {
			continue
		}
		if product, ok := f.products[row.ProductID]; ok && product.Status == enums.RowStatusActive {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (f *fakeStore) RetireHotProducts(_ context.Context, modifier string) error {
	for _, row := range f.hot {
		if row.Status == enums.RowStatusActive {
			row.Status = enums.RowStatusRetired
			row.Modifier = &modifier
		}
	}
	return nil
}

func (f *fakeStore) RetireHotProductsByProduct(_ context.Context, productID uint64, modifier string) error {
	for _, row := range f.hot {
		if row.Status == enums.RowStatusActive && row.ProductID == productID {
			row.Status = enums.RowStatusRetired
			row.Modifier = &modifier
		}
	}
	return nil
}

func (f *fakeStore) InsertHotProducts(_ context.Context, rows []*models.HotProduct) error {
	for _, row := range rows {
		row.ID = f.allocID()
		f.hot = append(f.hot, row)
	}
	return nil
}

func (f *fakeStore) activeHotIDs() []uint64 {
	var ids []uint64
	for _, row := range f.hot {
		if row.Status == enums.RowStatusActive {
			ids = append(ids, row.ProductID)
		}
	}
	return ids
}

// fakeCache is an in-memory Cache for hot-list tests.
type fakeCache struct {
	values map[string]string
	sets   int
	dels   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	if value, ok := c.values[key]; ok {
		return value, nil
	}
	return "", redis.ErrCacheMiss
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	switch v := value.(type) {
	case []byte:
		c.values[key] = string(v)
	case string:
		c.values[key] = v
	}
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.dels++
	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}

func catalogTestConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{DefaultPageSize: 20, MaxPageSize: 100},
		Redis:   config.RedisConfig{HotProductsTTL: time.Minute},
	}
}

func newCatalogService(t *testing.T, store Store, cache Cache) *Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(store, cache, catalogTestConfig(), logg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}
