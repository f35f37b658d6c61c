package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/model"
)

func cartProduct(quantity int) *model.Product {
	return &model.Product{
		ID:       10,
		Name:     "Fishing Rod",
		Price:    decimal.RequireFromString("25.50"),
		Quantity: quantity,
	}
}

func TestCartService_AddItem(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		setupMock     func(*MockCartRepository, *MockProductRepository)
		expectedError error
		expectedQty   int
	}{
		{
			name:     "new line",
			quantity: 2,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(10)).Return(cartProduct(5), nil)
				mc.On("FindByUserAndProduct", mock.Anything, uint(1), uint(10)).Return(nil, gorm.ErrRecordNotFound)
				mc.On("Create", mock.Anything, mock.AnythingOfType("*model.CartItem")).Return(nil)
				mc.On("ListByUser", mock.Anything, uint(1)).Return([]model.CartItem{
					{UserID: 1, ProductID: 10, Quantity: 2, Product: *cartProduct(5)},
				}, nil)
			},
			expectedQty: 2,
		},
		{
			name:     "merges into existing line",
			quantity: 2,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(10)).Return(cartProduct(5), nil)
				mc.On("FindByUserAndProduct", mock.Anything, uint(1), uint(10)).Return(&model.CartItem{
					UserID: 1, ProductID: 10, Quantity: 2,
				}, nil)
				mc.On("Update", mock.Anything, mock.MatchedBy(func(item *model.CartItem) bool {
					return item.Quantity == 4
				})).Return(nil)
				mc.On("ListByUser", mock.Anything, uint(1)).Return([]model.CartItem{
					{UserID: 1, ProductID: 10, Quantity: 4, Product: *cartProduct(5)},
				}, nil)
			},
			expectedQty: 4,
		},
		{
			name:     "merged quantity exceeds stock",
			quantity: 2,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(10)).Return(cartProduct(3), nil)
				mc.On("FindByUserAndProduct", mock.Anything, uint(1), uint(10)).Return(&model.CartItem{
					UserID: 1, ProductID: 10, Quantity: 2,
				}, nil)
			},
			expectedError: apperrors.ErrInsufficientStock,
		},
		{
			name:     "requested quantity exceeds stock",
			quantity: 6,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(10)).Return(cartProduct(5), nil)
			},
			expectedError: apperrors.ErrInsufficientStock,
		},
		{
			name:          "non-positive quantity",
			quantity:      0,
			setupMock:     func(mc *MockCartRepository, mp *MockProductRepository) {},
			expectedError: apperrors.ErrInvalidQuantity,
		},
		{
			name:     "unknown product",
			quantity: 1,
			setupMock: func(mc *MockCartRepository, mp *MockProductRepository) {
				mp.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCart := new(MockCartRepository)
			mockProducts := new(MockProductRepository)
			tt.setupMock(mockCart, mockProducts)

			service := NewCartService(mockCart, mockProducts)
			view, err := service.AddItem(context.Background(), 1, 10, tt.quantity)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, view)
			} else {
				assert.NoError(t, err)
				assert.Len(t, view.Items, 1)
				assert.Equal(t, tt.expectedQty, view.Items[0].Quantity)
			}
			mockCart.AssertExpectations(t)
			mockProducts.AssertExpectations(t)
		})
	}
}

func TestCartService_SetItemQuantity_ZeroRemovesLine(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockProducts.On("FindByID", mock.Anything, uint(10)).Return(cartProduct(5), nil)
	mockCart.On("Delete", mock.Anything, uint(1), uint(10)).Return(nil)
	mockCart.On("ListByUser", mock.Anything, uint(1)).Return([]model.CartItem{}, nil)

	service := NewCartService(mockCart, mockProducts)
	view, err := service.SetItemQuantity(context.Background(), 1, 10, 0)

	assert.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
	mockCart.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockCart.AssertExpectations(t)
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockCart.On("Delete", mock.Anything, uint(1), uint(10)).Return(gorm.ErrRecordNotFound)

	service := NewCartService(mockCart, mockProducts)
	view, err := service.RemoveItem(context.Background(), 1, 10)

	assert.ErrorIs(t, err, apperrors.ErrCartItemNotFound)
	assert.Nil(t, view)
}

func TestCartService_GetCart_PricesAtCurrentPrice(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockCart.On("ListByUser", mock.Anything, uint(1)).Return([]model.CartItem{
		{UserID: 1, ProductID: 10, Quantity: 2, Product: *cartProduct(5)},
		{UserID: 1, ProductID: 11, Quantity: 1, Product: model.Product{
			ID: 11, Name: "Bait Box", Price: decimal.RequireFromString("4.00"), Quantity: 9,
		}},
	}, nil)

	service := NewCartService(mockCart, mockProducts)
	view, err := service.GetCart(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, view.Items, 2)
	assert.True(t, view.Items[0].Subtotal.Equal(decimal.RequireFromString("51.00")))
	assert.True(t, view.Total.Equal(decimal.RequireFromString("55.00")))
}
