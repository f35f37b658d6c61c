package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopfront/internal/cache"
	"shopfront/internal/model"
	"shopfront/internal/repository"
)

const (
	dashboardCacheKey = "dashboard"
	dashboardCacheTTL = 60 * time.Second

	lowStockThreshold = 5
	lowStockLimit     = 5
)

// LowStockProduct is one row of the low-stock list.
type LowStockProduct struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DashboardData is the admin dashboard payload.
type DashboardData struct {
	TopSellingProduct *repository.TopProduct   `json:"topSellingProduct"`
	LowStockProducts  []LowStockProduct        `json:"lowStockProducts"`
	SalesSummary      *repository.SalesSummary `json:"salesSummary"`
}

// DashboardService computes the admin dashboard aggregates.
type DashboardService interface {
	Dashboard(ctx context.Context) (*DashboardData, error)
}

type dashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cache       *cache.Client
	now         func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cache *cache.Client) DashboardService {
	return &dashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cache:       cache,
		now:         time.Now,
	}
}

// Dashboard returns this month's delivered-sales summary, the best-selling
// product, and the five lowest-stock products. The payload is cached briefly;
// aggregates are otherwise recomputed per request.
func (s *dashboardService) Dashboard(ctx context.Context) (*DashboardData, error) {
	if data, _ := s.cache.Get(ctx, dashboardCacheKey); data != nil {
		var cached DashboardData
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Nanosecond)

	summary, err := s.orderRepo.SalesSummary(ctx, model.OrderStatusDelivered, startOfMonth, endOfMonth)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}

	top, err := s.orderRepo.TopSellingProduct(ctx)
	if err != nil {
		return nil, fmt.Errorf("top selling product: %w", err)
	}

	lowStock, err := s.productRepo.LowStock(ctx, lowStockThreshold, lowStockLimit)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}

	data := &DashboardData{
		TopSellingProduct: top,
		LowStockProducts:  make([]LowStockProduct, 0, len(lowStock)),
		SalesSummary:      summary,
	}
	for _, p := range lowStock {
		data.LowStockProducts = append(data.LowStockProducts, LowStockProduct{
			ID:       p.ID,
			Name:     p.Name,
			Quantity: p.Quantity,
		})
	}

	if payload, err := json.Marshal(data); err == nil {
		_ = s.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL)
	}

	return data, nil
}
