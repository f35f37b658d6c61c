package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/model"
	"shopfront/internal/repository"
)

// SupplierInput carries the fields accepted for supplier create and update.
type SupplierInput struct {
	Name    string
	Email   string
	CNPJ    string
	Phone   string
	Website string
}

// SupplierPage is the paginated supplier listing envelope.
type SupplierPage struct {
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	Items      []model.Supplier `json:"items"`
}

// SupplierService handles vendor management operations.
type SupplierService interface {
	Create(ctx context.Context, actorID uint, in SupplierInput) (*model.Supplier, error)
	Get(ctx context.Context, id uint) (*model.Supplier, error)
	Update(ctx context.Context, actorID, id uint, in SupplierInput) (*model.Supplier, error)
	List(ctx context.Context, filter repository.SupplierFilter, page, limit int) (*SupplierPage, error)
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, actorID uint, in SupplierInput) (*model.Supplier, error) {
	supplier := &model.Supplier{
		Name:      in.Name,
		Email:     in.Email,
		CNPJ:      in.CNPJ,
		Phone:     in.Phone,
		Website:   in.Website,
		CreatedBy: &actorID,
		UpdatedBy: &actorID,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) Get(ctx context.Context, id uint) (*model.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Update(ctx context.Context, actorID, id uint, in SupplierInput) (*model.Supplier, error) {
	supplier, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = in.Name
	supplier.Email = in.Email
	supplier.CNPJ = in.CNPJ
	supplier.Phone = in.Phone
	if in.Website != "" {
		supplier.Website = in.Website
	}
	supplier.UpdatedBy = &actorID

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context, filter repository.SupplierFilter, page, limit int) (*SupplierPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count suppliers: %w", err)
	}

	items, err := s.repo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	if items == nil {
		items = []model.Supplier{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &SupplierPage{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
		Items:      items,
	}, nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrSupplierNotFound
		}
		return err
	}
	return nil
}
