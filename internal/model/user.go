package model

import "time"

// UserType distinguishes storefront customers from back-office admins.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeAdmin    UserType = "admin"
)

// User represents a registered storefront user.
// Address columns are stored flat and exposed as a nested object in JSON.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	UserType     UserType  `json:"userType" gorm:"type:varchar(20);not null;default:'customer';index"`
	Phone        string    `json:"-" gorm:"size:30"`
	Street       string    `json:"-" gorm:"size:255;not null;default:''"`
	Number       string    `json:"-" gorm:"size:20;not null;default:''"`
	City         string    `json:"-" gorm:"size:100;not null;default:''"`
	State        string    `json:"-" gorm:"size:100;not null;default:''"`
	Zipcode      string    `json:"-" gorm:"size:20;not null;default:''"`
	Country      string    `json:"-" gorm:"size:100;not null;default:''"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Address groups the flat address columns for API responses and the
// denormalized shipping snapshot written at checkout.
type Address struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

// Address returns the user's address columns as a single value.
func (u *User) Address() Address {
	return Address{
		Street:  u.Street,
		Number:  u.Number,
		City:    u.City,
		State:   u.State,
		Zipcode: u.Zipcode,
		Country: u.Country,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}
