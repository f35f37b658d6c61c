package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopfront/internal/cache"
	apperrors "shopfront/internal/errors"
	"shopfront/internal/model"
	"shopfront/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// CreateProductInput carries the fields accepted when creating a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CostPrice   decimal.Decimal
	Quantity    int
	SupplierID  *uint
	ImageURLs   []string
}

// UpdateProductInput carries a partial product update. Nil fields keep the
// stored values; a non-nil ImageURLs replaces the whole gallery.
type UpdateProductInput struct {
	Name        string
	Description *string
	Price       *decimal.Decimal
	CostPrice   *decimal.Decimal
	Quantity    *int
	SupplierID  *uint
	ImageURLs   []string
}

// ProductService handles catalog operations.
type ProductService interface {
	Create(ctx context.Context, actorID uint, in CreateProductInput) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Update(ctx context.Context, actorID, id uint, in UpdateProductInput) (*model.Product, error)
	List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, cache: cache}
}

// productCacheKey is shared with checkout, which must drop cached products
// whose stock it decrements.
func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Create adds a catalog item. Product names are unique.
func (s *productService) Create(ctx context.Context, actorID uint, in CreateProductInput) (*model.Product, error) {
	existing, err := s.repo.FindByName(ctx, in.Name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateProductName
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check product name: %w", err)
	}

	product := &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CostPrice:   in.CostPrice,
		Quantity:    in.Quantity,
		SupplierID:  in.SupplierID,
		CreatedBy:   &actorID,
		UpdatedBy:   &actorID,
	}
	for i, url := range in.ImageURLs {
		product.Images = append(product.Images, model.ProductImage{URL: url, Position: i})
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Get retrieves a product by ID, serving from cache when warm.
func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, productCacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, productCacheKey(id), payload, productCacheTTL)
	}

	return product, nil
}

func (s *productService) Update(ctx context.Context, actorID, id uint, in UpdateProductInput) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	if in.Name != "" && in.Name != product.Name {
		existing, err := s.repo.FindByName(ctx, in.Name)
		if err == nil && existing != nil {
			return nil, apperrors.ErrDuplicateProductName
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check product name: %w", err)
		}
		product.Name = in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	product.UpdatedBy = &actorID

	// Save would also write the preloaded association rows; clear them and
	// let ReplaceImages own the gallery.
	product.Images = nil
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if in.ImageURLs != nil {
		images := make([]model.ProductImage, 0, len(in.ImageURLs))
		for _, url := range in.ImageURLs {
			images = append(images, model.ProductImage{URL: url})
		}
		if err := s.repo.ReplaceImages(ctx, product.ID, images); err != nil {
			return nil, fmt.Errorf("replace images: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, productCacheKey(id))

	return s.repo.FindByID(ctx, id)
}

func (s *productService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrProductNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, productCacheKey(id))
	return nil
}
