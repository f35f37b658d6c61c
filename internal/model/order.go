package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// CanTransitionTo reports whether the linear chain placed -> shipped ->
// delivered allows moving to next, with canceled reachable from any
// non-terminal state. Canceling never restocks products.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch next {
	case OrderStatusShipped:
		return s == OrderStatusPlaced
	case OrderStatusDelivered:
		return s == OrderStatusShipped
	case OrderStatusCanceled:
		return s == OrderStatusPlaced || s == OrderStatusShipped
	default:
		return false
	}
}

// Order is a placed checkout: a shipping-address snapshot, a denormalized
// total, and immutable line items created in the same transaction.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Number      string          `json:"number" gorm:"type:char(36);uniqueIndex;not null"`
	UserID      uint            `json:"userId" gorm:"not null;index"`
	Status      OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'placed';index"`
	FullAddress string          `json:"fullAddress" gorm:"size:500;not null"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	User  User        `json:"-" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns the public order number before the row is written.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Number == "" {
		o.Number = uuid.New().String()
	}
	return nil
}
