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
	"shopfront/internal/repository"
)

func checkoutUser() *model.User {
	return &model.User{
		ID:      1,
		Name:    "Test User",
		Email:   "test@example.com",
		Street:  "Rua das Flores",
		Number:  "100",
		City:    "Sao Paulo",
		State:   "SP",
		Zipcode: "01000-000",
		Country: "Brazil",
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockCart := new(MockCartRepository)
	mockCache := new(MockProductCache)
	mockOrders.Checkout = repository.CheckoutRepos{
		Orders:   mockOrders,
		Products: mockProducts,
		Cart:     mockCart,
	}

	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(checkoutUser(), nil)
	mockOrders.On("WithTransaction", mock.Anything).Return(nil)
	mockProducts.On("FindByIDForUpdate", mock.Anything, uint(10)).Return(&model.Product{
		ID:       10,
		Name:     "Fishing Rod",
		Price:    decimal.RequireFromString("10.00"),
		Quantity: 2,
	}, nil)
	mockProducts.On("UpdateQuantity", mock.Anything, uint(10), 0).Return(nil)
	mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
	mockCart.On("ClearByUser", mock.Anything, uint(1)).Return(nil)
	mockCache.On("Delete", mock.Anything, "product:10").Return(nil)

	service := NewOrderService(mockOrders, mockUsers, mockCache)
	order, err := service.PlaceOrder(context.Background(), 1, []OrderLineInput{
		{ProductID: 10, Quantity: 2},
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, uint(1), order.UserID)
	assert.Equal(t, model.OrderStatusPlaced, order.Status)
	assert.Equal(t, "Rua das Flores, 100 - Sao Paulo/SP - 01000-000, Brazil", order.FullAddress)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("20.00")))
	assert.Len(t, order.Items, 1)
	assert.Equal(t, uint(10), order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.RequireFromString("20.00")))

	mockUsers.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
	mockCart.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockCart := new(MockCartRepository)
	mockOrders.Checkout = repository.CheckoutRepos{
		Orders:   mockOrders,
		Products: mockProducts,
		Cart:     mockCart,
	}

	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(checkoutUser(), nil)
	mockOrders.On("WithTransaction", mock.Anything).Return(nil)
	mockProducts.On("FindByIDForUpdate", mock.Anything, uint(10)).Return(&model.Product{
		ID:       10,
		Name:     "Fishing Rod",
		Price:    decimal.RequireFromString("10.00"),
		Quantity: 1,
	}, nil)

	mockCache := new(MockProductCache)
	service := NewOrderService(mockOrders, mockUsers, mockCache)
	order, err := service.PlaceOrder(context.Background(), 1, []OrderLineInput{
		{ProductID: 10, Quantity: 2},
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Nil(t, order)
	mockProducts.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockCart.AssertNotCalled(t, "ClearByUser", mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_Errors(t *testing.T) {
	tests := []struct {
		name          string
		lines         []OrderLineInput
		setupMock     func(*MockUserRepository, *MockOrderRepository, *MockProductRepository)
		expectedError error
	}{
		{
			name:          "empty order",
			lines:         nil,
			setupMock:     func(mu *MockUserRepository, mo *MockOrderRepository, mp *MockProductRepository) {},
			expectedError: apperrors.ErrEmptyOrder,
		},
		{
			name:  "user not found",
			lines: []OrderLineInput{{ProductID: 10, Quantity: 1}},
			setupMock: func(mu *MockUserRepository, mo *MockOrderRepository, mp *MockProductRepository) {
				mu.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:  "non-positive quantity",
			lines: []OrderLineInput{{ProductID: 10, Quantity: 0}},
			setupMock: func(mu *MockUserRepository, mo *MockOrderRepository, mp *MockProductRepository) {
				mu.On("FindByID", mock.Anything, uint(1)).Return(checkoutUser(), nil)
				mo.On("WithTransaction", mock.Anything).Return(nil)
			},
			expectedError: apperrors.ErrInvalidQuantity,
		},
		{
			name:  "unknown product",
			lines: []OrderLineInput{{ProductID: 99, Quantity: 1}},
			setupMock: func(mu *MockUserRepository, mo *MockOrderRepository, mp *MockProductRepository) {
				mu.On("FindByID", mock.Anything, uint(1)).Return(checkoutUser(), nil)
				mo.On("WithTransaction", mock.Anything).Return(nil)
				mp.On("FindByIDForUpdate", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockOrders := new(MockOrderRepository)
			mockProducts := new(MockProductRepository)
			mockCart := new(MockCartRepository)
			mockOrders.Checkout = repository.CheckoutRepos{
				Orders:   mockOrders,
				Products: mockProducts,
				Cart:     mockCart,
			}
			tt.setupMock(mockUsers, mockOrders, mockProducts)

			service := NewOrderService(mockOrders, mockUsers, new(MockProductCache))
			order, err := service.PlaceOrder(context.Background(), 1, tt.lines)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, order)
			mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_Transition(t *testing.T) {
	tests := []struct {
		name          string
		current       model.OrderStatus
		next          model.OrderStatus
		expectedError error
	}{
		{name: "placed to shipped", current: model.OrderStatusPlaced, next: model.OrderStatusShipped},
		{name: "shipped to delivered", current: model.OrderStatusShipped, next: model.OrderStatusDelivered},
		{name: "placed to canceled", current: model.OrderStatusPlaced, next: model.OrderStatusCanceled},
		{name: "shipped to canceled", current: model.OrderStatusShipped, next: model.OrderStatusCanceled},
		{
			name:          "placed cannot skip to delivered",
			current:       model.OrderStatusPlaced,
			next:          model.OrderStatusDelivered,
			expectedError: apperrors.ErrInvalidStatusTransition,
		},
		{
			name:          "delivered cannot be canceled",
			current:       model.OrderStatusDelivered,
			next:          model.OrderStatusCanceled,
			expectedError: apperrors.ErrInvalidStatusTransition,
		},
		{
			name:          "canceled is terminal",
			current:       model.OrderStatusCanceled,
			next:          model.OrderStatusShipped,
			expectedError: apperrors.ErrInvalidStatusTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockOrders := new(MockOrderRepository)
			mockOrders.On("FindByID", mock.Anything, uint(7)).Return(&model.Order{
				ID:     7,
				Status: tt.current,
			}, nil)
			if tt.expectedError == nil {
				mockOrders.On("UpdateStatus", mock.Anything, uint(7), tt.next).Return(nil)
			}

			service := NewOrderService(mockOrders, mockUsers, new(MockProductCache))
			order, err := service.Transition(context.Background(), 7, tt.next)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.next, order.Status)
			}
			mockOrders.AssertExpectations(t)
		})
	}
}

func TestOrderService_Transition_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockOrders := new(MockOrderRepository)
	mockOrders.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	service := NewOrderService(mockOrders, mockUsers, new(MockProductCache))
	order, err := service.Transition(context.Background(), 7, model.OrderStatusShipped)

	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
	assert.Nil(t, order)
}

func TestOrderService_List(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockOrders := new(MockOrderRepository)
	mockOrders.On("Count", mock.Anything).Return(int64(21), nil)
	mockOrders.On("List", mock.Anything, 10, 10).Return([]model.Order{{ID: 11}}, nil)

	service := NewOrderService(mockOrders, mockUsers, new(MockProductCache))
	page, err := service.List(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, int64(21), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 1)
	mockOrders.AssertExpectations(t)
}
