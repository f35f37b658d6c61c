package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shopfront/internal/model"
	"shopfront/internal/repository"
)

func TestDashboardService_Dashboard(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Nanosecond)

	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)

	mockOrders.On("SalesSummary", mock.Anything, model.OrderStatusDelivered, startOfMonth, endOfMonth).
		Return(&repository.SalesSummary{
			TotalSales:  decimal.RequireFromString("120.00"),
			TotalOrders: 3,
		}, nil)
	mockOrders.On("TopSellingProduct", mock.Anything).Return(&repository.TopProduct{
		ProductID: 10,
		Name:      "Fishing Rod",
		TotalSold: 7,
	}, nil)
	mockProducts.On("LowStock", mock.Anything, lowStockThreshold, lowStockLimit).Return([]model.Product{
		{ID: 12, Name: "Bait Box", Quantity: 1},
		{ID: 11, Name: "Fishing Line", Quantity: 3},
	}, nil)

	service := &dashboardService{
		orderRepo:   mockOrders,
		productRepo: mockProducts,
		now:         func() time.Time { return now },
	}

	data, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, data.TopSellingProduct)
	assert.Equal(t, "Fishing Rod", data.TopSellingProduct.Name)
	assert.Equal(t, int64(7), data.TopSellingProduct.TotalSold)
	assert.True(t, data.SalesSummary.TotalSales.Equal(decimal.RequireFromString("120.00")))
	assert.Equal(t, int64(3), data.SalesSummary.TotalOrders)
	assert.Equal(t, []LowStockProduct{
		{ID: 12, Name: "Bait Box", Quantity: 1},
		{ID: 11, Name: "Fishing Line", Quantity: 3},
	}, data.LowStockProducts)

	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestDashboardService_Dashboard_NoSales(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)

	mockOrders.On("SalesSummary", mock.Anything, model.OrderStatusDelivered, mock.Anything, mock.Anything).
		Return(&repository.SalesSummary{TotalSales: decimal.Zero, TotalOrders: 0}, nil)
	mockOrders.On("TopSellingProduct", mock.Anything).Return(nil, nil)
	mockProducts.On("LowStock", mock.Anything, lowStockThreshold, lowStockLimit).Return([]model.Product{}, nil)

	service := &dashboardService{
		orderRepo:   mockOrders,
		productRepo: mockProducts,
		now:         time.Now,
	}

	data, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, data.TopSellingProduct)
	assert.Empty(t, data.LowStockProducts)
	assert.True(t, data.SalesSummary.TotalSales.IsZero())
}
