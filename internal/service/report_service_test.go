package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shopfront/internal/model"
)

func TestReportService_SalesReport(t *testing.T) {
	rod := model.Product{ID: 10, Name: "Fishing Rod",
		Price: decimal.RequireFromString("10.00"), CostPrice: decimal.RequireFromString("6.00")}
	bait := model.Product{ID: 11, Name: "Bait Box",
		Price: decimal.RequireFromString("4.00"), CostPrice: decimal.RequireFromString("1.00")}

	january := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	mockOrders := new(MockOrderRepository)
	mockOrders.On("ListWithProducts", mock.Anything).Return([]model.Order{
		{
			ID: 1, Number: "n-1", Status: model.OrderStatusDelivered, CreatedAt: february,
			Items: []model.OrderItem{
				{ProductID: 10, Quantity: 2, UnitPrice: rod.Price,
					Subtotal: decimal.RequireFromString("20.00"), Product: rod},
			},
		},
		{
			ID: 2, Number: "n-2", Status: model.OrderStatusDelivered, CreatedAt: january,
			Items: []model.OrderItem{
				{ProductID: 11, Quantity: 3, UnitPrice: bait.Price,
					Subtotal: decimal.RequireFromString("12.00"), Product: bait},
			},
		},
	}, nil)

	service := NewReportService(mockOrders)
	report, err := service.SalesReport(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, report.Summary.TotalOrders)
	// 20.00 + 12.00 in sales; profit (10-6)*2 + (4-1)*3 = 17.00
	assert.True(t, report.Summary.TotalSales.Equal(decimal.RequireFromString("32.00")))
	assert.True(t, report.Summary.TotalProfit.Equal(decimal.RequireFromString("17.00")))

	// monthly buckets sorted ascending
	assert.Len(t, report.Monthly, 2)
	assert.Equal(t, "2024-01", report.Monthly[0].Month)
	assert.True(t, report.Monthly[0].Value.Equal(decimal.RequireFromString("12.00")))
	assert.Equal(t, "2024-02", report.Monthly[1].Month)

	// top products sorted by units sold descending
	assert.Equal(t, []TopProductSales{
		{Name: "Bait Box", Quantity: 3},
		{Name: "Fishing Rod", Quantity: 2},
	}, report.TopProducts)

	mockOrders.AssertExpectations(t)
}

func TestReportService_SalesReport_Empty(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockOrders.On("ListWithProducts", mock.Anything).Return([]model.Order{}, nil)

	service := NewReportService(mockOrders)
	report, err := service.SalesReport(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, report.Summary.TotalOrders)
	assert.Empty(t, report.Monthly)
	assert.Empty(t, report.TopProducts)
	assert.Empty(t, report.Orders)
}
