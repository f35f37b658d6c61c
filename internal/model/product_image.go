package model

import "time"

// ProductImage is one image URL in a product's ordered gallery.
// Rows are removed together with their product.
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"productId" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"size:500;not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
