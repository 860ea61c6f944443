// Package catalogrepo reads restaurants, menu items, addresses and stored payment
// methods. The tables belong to the catalog; this package never writes them.
package catalogrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogReader implements ports.CatalogReader over the catalog tables.
type GormCatalogReader struct {
	db *gorm.DB
}

var _ ports.CatalogReader = (*GormCatalogReader)(nil)

// NewGormCatalogReader creates a reader over db.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetRestaurant returns ErrObjectNotFound for an unknown id.
func (r *GormCatalogReader) GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.first(ctx, &dto, "restaurant", id); err != nil {
		return catalog.Restaurant{}, err
	}
	return dto.toDomain()
}

// GetMenuItems loads the items with the given ids in one query. Unknown ids are
// skipped, so callers compare lengths to detect them.
func (r *GormCatalogReader) GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]catalog.MenuItem, error) {
	if len(ids) == 0 {
		return []catalog.MenuItem{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GetAddress returns ErrObjectNotFound for an unknown id.
func (r *GormCatalogReader) GetAddress(ctx context.Context, id kernel.UUID) (catalog.Address, error) {
	var dto AddressDTO
	if err := r.first(ctx, &dto, "address", id); err != nil {
		return catalog.Address{}, err
	}
	return dto.toDomain()
}

// GetPaymentMethod returns ErrObjectNotFound for an unknown id.
func (r *GormCatalogReader) GetPaymentMethod(ctx context.Context, id kernel.UUID) (catalog.PaymentMethod, error) {
	var dto PaymentMethodDTO
	if err := r.first(ctx, &dto, "paymentMethod", id); err != nil {
		return catalog.PaymentMethod{}, err
	}
	return dto.toDomain()
}

func (r *GormCatalogReader) first(ctx context.Context, dest any, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).First(dest, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(name, id.String())
	}
	return err
}
