package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/model"
	"shopfront/internal/repository"
)

// OrderLineInput is one requested line at checkout.
type OrderLineInput struct {
	ProductID uint
	Quantity  int
}

// OrderPage is the paginated admin order listing envelope.
type OrderPage struct {
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalItems int64         `json:"totalItems"`
	TotalPages int           `json:"totalPages"`
	Items      []model.Order `json:"items"`
}

// OrderService handles checkout and order lifecycle operations.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID uint, lines []OrderLineInput) (*model.Order, error)
	MyOrders(ctx context.Context, userID uint) ([]model.Order, error)
	List(ctx context.Context, page, limit int) (*OrderPage, error)
	Transition(ctx context.Context, orderID uint, next model.OrderStatus) (*model.Order, error)
}

// ProductCache drops cached product payloads whose stock checkout changed.
type ProductCache interface {
	Delete(ctx context.Context, key string) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	cache     ProductCache
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, cache ProductCache) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		cache:     cache,
	}
}

// PlaceOrder runs the whole checkout in one database transaction with
// per-product row locks: stock checks, stock decrements, the order row, its
// items, and the cart cleanup all commit or roll back together. A failure on
// any line leaves stock and cart untouched and records no order.
func (s *orderService) PlaceOrder(ctx context.Context, userID uint, lines []OrderLineInput) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyOrder
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	addr := user.Address()
	fullAddress := fmt.Sprintf("%s, %s - %s/%s - %s, %s",
		addr.Street, addr.Number, addr.City, addr.State, addr.Zipcode, addr.Country)

	var order *model.Order
	err = s.orderRepo.WithTransaction(ctx, func(ctx context.Context, repos repository.CheckoutRepos) error {
		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(lines))

		for _, line := range lines {
			if line.Quantity <= 0 {
				return apperrors.ErrInvalidQuantity
			}

			product, err := repos.Products.FindByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return fmt.Errorf("product %d: %w", line.ProductID, apperrors.ErrProductNotFound)
				}
				return err
			}
			if product.Quantity < line.Quantity {
				return fmt.Errorf("product %s: %w", product.Name, apperrors.ErrInsufficientStock)
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)

			items = append(items, model.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})

			if err := repos.Products.UpdateQuantity(ctx, product.ID, product.Quantity-line.Quantity); err != nil {
				return fmt.Errorf("decrement stock for product %d: %w", product.ID, err)
			}
		}

		order = &model.Order{
			UserID:      userID,
			Status:      model.OrderStatusPlaced,
			FullAddress: fullAddress,
			Total:       total,
			Items:       items,
		}
		if err := repos.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err := repos.Cart.ClearByUser(ctx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Cached product payloads now carry pre-checkout stock.
	for _, item := range order.Items {
		_ = s.cache.Delete(ctx, productCacheKey(item.ProductID))
	}

	return order, nil
}

func (s *orderService) MyOrders(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderService) List(ctx context.Context, page, limit int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	items, err := s.orderRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if items == nil {
		items = []model.Order{}
	}

	return &OrderPage{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		Items:      items,
	}, nil
}

// Transition moves an order along placed -> shipped -> delivered, or to
// canceled from a non-terminal state. Canceling does not restock products.
func (s *orderService) Transition(ctx context.Context, orderID uint, next model.OrderStatus) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%s -> %s: %w", order.Status, next, apperrors.ErrInvalidStatusTransition)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	return order, nil
}
