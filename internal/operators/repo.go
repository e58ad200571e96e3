package operators

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowmart/cosmetics-backend/pkg/db"
	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no operator row matches the lookup.
var ErrNotFound = errors.New("operator not found")

// Repository persists admin operators.
type Repository struct {
	client *db.Client
}

func NewRepository(client *db.Client) (*Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	return &Repository{client: client}, nil
}

// FindByUsername loads a single operator by its unique username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.Operator, error) {
	var operator models.Operator
	err := r.client.DB().WithContext(ctx).
		Where("username = ?", username).
		First(&operator).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying operator by username: %w", err)
	}
	return &operator, nil
}

// FindByID loads an operator by primary key.
func (r *Repository) FindByID(ctx context.Context, id uint64) (*models.Operator, error) {
	var operator models.Operator
	err := r.client.DB().WithContext(ctx).
		Where("id = ?", id).
		First(&operator).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying operator by id: %w", err)
	}
	return &operator, nil
}

// Create inserts a new operator row.
func (r *Repository) Create(ctx context.Context, operator *models.Operator) error {
	if err := r.client.DB().WithContext(ctx).Create(operator).Error; err != nil {
		return fmt.Errorf("inserting operator: %w", err)
	}
	return nil
}

// UpdatePasswordHash rotates the stored hash for the given operator.
func (r *Repository) UpdatePasswordHash(ctx context.Context, id uint64, hash string, modifier string) error {
	result := r.client.DB().WithContext(ctx).
		Model(&models.Operator{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password": hash,
			"modifier": modifier,
		})
	if result.Error != nil {
		return fmt.Errorf("updating operator password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
