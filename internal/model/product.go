package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item with its stock level.
// Quantity is mutated only by order placement; OrderItem rows keep the
// historical price snapshot, so price changes never rewrite past orders.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string          `json:"description" gorm:"size:1000;not null;default:''"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CostPrice   decimal.Decimal `json:"costPrice" gorm:"type:decimal(10,2);not null;default:0"`
	Quantity    int             `json:"quantity" gorm:"not null;index"`
	SupplierID  *uint           `json:"supplierId,omitempty" gorm:"index"`
	CreatedBy   *uint           `json:"createdBy,omitempty"`
	UpdatedBy   *uint           `json:"updatedBy,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Supplier *Supplier      `json:"-" gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
	Images   []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
