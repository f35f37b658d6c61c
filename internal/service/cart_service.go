package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/model"
	"shopfront/internal/repository"
)

// CartLine is one cart row priced at the product's current price.
type CartLine struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartView is the cart as returned to the client.
type CartView struct {
	UserID uint            `json:"userId"`
	Items  []CartLine      `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// CartService handles per-user cart operations.
type CartService interface {
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*CartView, error)
	SetItemQuantity(ctx context.Context, userID, productID uint, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, userID, productID uint) (*CartView, error)
	GetCart(ctx context.Context, userID uint) (*CartView, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem merges the requested quantity into an existing (user, product) row
// or creates one. The merged quantity must not exceed current stock.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}
	if product.Quantity < quantity {
		return nil, apperrors.ErrInsufficientStock
	}

	item, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	switch {
	case err == nil:
		merged := item.Quantity + quantity
		if product.Quantity < merged {
			return nil, apperrors.ErrInsufficientStock
		}
		item.Quantity = merged
		if err := s.cartRepo.Update(ctx, item); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
	case err == gorm.ErrRecordNotFound:
		item = &model.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		if err := s.cartRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("create cart item: %w", err)
		}
	default:
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// SetItemQuantity sets the absolute quantity for a line. Zero or negative
// removes the line; an absent line is created.
func (s *cartService) SetItemQuantity(ctx context.Context, userID, productID uint, quantity int) (*CartView, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	if quantity <= 0 {
		if err := s.cartRepo.Delete(ctx, userID, productID); err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}
		return s.GetCart(ctx, userID)
	}

	if product.Quantity < quantity {
		return nil, apperrors.ErrInsufficientStock
	}

	item, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	switch {
	case err == nil:
		item.Quantity = quantity
		if err := s.cartRepo.Update(ctx, item); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
	case err == gorm.ErrRecordNotFound:
		item = &model.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		if err := s.cartRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("create cart item: %w", err)
		}
	default:
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID uint) (*CartView, error) {
	if err := s.cartRepo.Delete(ctx, userID, productID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCartItemNotFound
		}
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// GetCart prices every line at the product's current price; snapshots are
// taken only at checkout.
func (s *cartService) GetCart(ctx context.Context, userID uint) (*CartView, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	view := &CartView{
		UserID: userID,
		Items:  make([]CartLine, 0, len(items)),
		Total:  decimal.Zero,
	}
	for _, item := range items {
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, CartLine{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Subtotal:  subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}
