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

func TestProductService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateProductInput
		setupMock     func(*MockProductRepository)
		expectedError error
	}{
		{
			name: "successful creation",
			input: CreateProductInput{
				Name:      "Fishing Rod",
				Price:     decimal.RequireFromString("10.00"),
				CostPrice: decimal.RequireFromString("6.00"),
				Quantity:  5,
				ImageURLs: []string{"https://img.example.com/rod.jpg"},
			},
			setupMock: func(m *MockProductRepository) {
				m.On("FindByName", mock.Anything, "Fishing Rod").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
			},
		},
		{
			name:  "duplicate name",
			input: CreateProductInput{Name: "Fishing Rod"},
			setupMock: func(m *MockProductRepository) {
				m.On("FindByName", mock.Anything, "Fishing Rod").Return(&model.Product{
					ID: 10, Name: "Fishing Rod",
				}, nil)
			},
			expectedError: apperrors.ErrDuplicateProductName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			tt.setupMock(mockRepo)

			service := NewProductService(mockRepo, nil)
			product, err := service.Create(context.Background(), 1, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, product)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Name, product.Name)
				assert.Equal(t, tt.input.Quantity, product.Quantity)
				assert.Len(t, product.Images, len(tt.input.ImageURLs))
				assert.Equal(t, uint(1), *product.CreatedBy)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewProductService(mockRepo, nil)
	product, err := service.Get(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	assert.Nil(t, product)
}

func TestProductService_Update_PartialFields(t *testing.T) {
	stored := &model.Product{
		ID:          10,
		Name:        "Fishing Rod",
		Description: "Old description",
		Price:       decimal.RequireFromString("10.00"),
		Quantity:    5,
	}
	newPrice := decimal.RequireFromString("12.50")

	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, uint(10)).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Price.Equal(newPrice) && p.Description == "Old description" && p.Quantity == 5
	})).Return(nil)

	service := NewProductService(mockRepo, nil)
	product, err := service.Update(context.Background(), 1, 10, UpdateProductInput{Price: &newPrice})

	assert.NoError(t, err)
	assert.NotNil(t, product)
	mockRepo.AssertNotCalled(t, "ReplaceImages", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}
