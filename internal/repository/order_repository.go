package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopfront/internal/model"
)

// SalesSummary aggregates delivered orders over a period.
type SalesSummary struct {
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalOrders int64           `json:"totalOrders"`
}

// TopProduct is the best-selling product by summed order-item quantity.
type TopProduct struct {
	ProductID uint   `json:"id"`
	Name      string `json:"name"`
	TotalSold int64  `json:"totalSold"`
}

// CheckoutRepos bundles the repositories bound to a single transaction
// during order placement.
type CheckoutRepos struct {
	Orders   OrderRepository
	Products ProductRepository
	Cart     CartRepository
}

// OrderRepository defines order persistence and aggregation operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	List(ctx context.Context, offset, limit int) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	ListWithProducts(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error
	SalesSummary(ctx context.Context, status model.OrderStatus, from, to time.Time) (*SalesSummary, error)
	TopSellingProduct(ctx context.Context) (*TopProduct, error)
	// WithTransaction runs fn with repositories bound to one transaction.
	// Any error rolls back every write made inside fn.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos CheckoutRepos) error) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order together with its line items.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListWithProducts loads every order with its items and their products,
// newest first. Used by the sales report.
func (r *orderRepository) ListWithProducts(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) SalesSummary(ctx context.Context, status model.OrderStatus, from, to time.Time) (*SalesSummary, error) {
	var row struct {
		TotalSales  decimal.Decimal
		TotalOrders int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(total), 0) AS total_sales, COUNT(id) AS total_orders").
		Where("status = ? AND created_at BETWEEN ? AND ?", status, from, to).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return &SalesSummary{TotalSales: row.TotalSales, TotalOrders: row.TotalOrders}, nil
}

func (r *orderRepository) TopSellingProduct(ctx context.Context) (*TopProduct, error) {
	var row struct {
		ProductID uint
		Name      string
		TotalSold int64
	}
	res := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("order_items.product_id AS product_id, products.name AS name, SUM(order_items.quantity) AS total_sold").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.name").
		Order("total_sold DESC").
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &TopProduct{ProductID: row.ProductID, Name: row.Name, TotalSold: row.TotalSold}, nil
}

// WithTransaction executes fn with order, product, and cart repositories all
// bound to the same database transaction.
func (r *orderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos CheckoutRepos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := CheckoutRepos{
			Orders:   &orderRepository{db: tx},
			Products: &productRepository{db: tx},
			Cart:     &cartRepository{db: tx},
		}
		return fn(ctx, repos)
	})
}
