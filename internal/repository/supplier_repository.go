package repository

import (
	"context"

	"gorm.io/gorm"

	"shopfront/internal/model"
)

// SupplierFilter narrows supplier listings. Name matches as a substring,
// CNPJ matches exactly when set.
type SupplierFilter struct {
	Name string
	CNPJ string
}

// SupplierRepository defines supplier persistence operations.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	Update(ctx context.Context, supplier *model.Supplier) error
	FindByID(ctx context.Context, id uint) (*model.Supplier, error)
	List(ctx context.Context, filter SupplierFilter, offset, limit int) ([]model.Supplier, error)
	Count(ctx context.Context, filter SupplierFilter) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository builds a GORM-backed repository.
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepository) Update(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *supplierRepository) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) filtered(ctx context.Context, filter SupplierFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Supplier{})
	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.CNPJ != "" {
		q = q.Where("cnpj = ?", filter.CNPJ)
	}
	return q
}

func (r *supplierRepository) List(ctx context.Context, filter SupplierFilter, offset, limit int) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := r.filtered(ctx, filter).Offset(offset).Limit(limit).Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) Count(ctx context.Context, filter SupplierFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *supplierRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
