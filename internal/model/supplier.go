package model

import "time"

// Supplier represents a product vendor managed by admins.
type Supplier struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	CNPJ      string    `json:"cnpj" gorm:"column:cnpj;uniqueIndex;size:20;not null"`
	Phone     string    `json:"phone" gorm:"size:30;not null"`
	Website   string    `json:"website,omitempty" gorm:"size:255"`
	CreatedBy *uint     `json:"createdBy,omitempty"`
	UpdatedBy *uint     `json:"updatedBy,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
