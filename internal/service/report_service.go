package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"shopfront/internal/repository"
)

// ReportItem is one order line inside the sales report.
type ReportItem struct {
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ReportOrder is one order inside the sales report.
type ReportOrder struct {
	ID        uint            `json:"id"`
	Number    string          `json:"number"`
	Date      string          `json:"date"`
	Status    string          `json:"status"`
	Items     []ReportItem    `json:"items"`
	TotalSale decimal.Decimal `json:"totalSale"`
	Profit    decimal.Decimal `json:"profit"`
}

// MonthlySales is total sales for one "YYYY-MM" bucket.
type MonthlySales struct {
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// TopProductSales is a product's total units sold across all orders.
type TopProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ReportSummary aggregates the whole report.
type ReportSummary struct {
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	TotalOrders int             `json:"totalOrders"`
}

// SalesReport is the full sales report payload.
type SalesReport struct {
	Summary     ReportSummary     `json:"summary"`
	Monthly     []MonthlySales    `json:"monthly"`
	TopProducts []TopProductSales `json:"topProducts"`
	Orders      []ReportOrder     `json:"orders"`
}

const reportTopProductsLimit = 10

// ReportService builds the sales report from order history.
type ReportService interface {
	SalesReport(ctx context.Context) (*SalesReport, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
}

// NewReportService creates a new report service.
func NewReportService(orderRepo repository.OrderRepository) ReportService {
	return &reportService{orderRepo: orderRepo}
}

// SalesReport walks every order with its item snapshots. Sales come from the
// stored unit prices; profit is (unitPrice - costPrice) x quantity using the
// product's current cost price.
func (s *reportService) SalesReport(ctx context.Context) (*SalesReport, error) {
	orders, err := s.orderRepo.ListWithProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	report := &SalesReport{
		Monthly:     []MonthlySales{},
		TopProducts: []TopProductSales{},
		Orders:      []ReportOrder{},
	}
	if len(orders) == 0 {
		return report, nil
	}

	monthly := map[string]decimal.Decimal{}
	productUnits := map[string]int{}

	for _, order := range orders {
		ro := ReportOrder{
			ID:        order.ID,
			Number:    order.Number,
			Date:      order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Status:    string(order.Status),
			Items:     make([]ReportItem, 0, len(order.Items)),
			TotalSale: decimal.Zero,
			Profit:    decimal.Zero,
		}

		for _, item := range order.Items {
			name := item.Product.Name
			if name == "" {
				name = fmt.Sprintf("product-%d", item.ProductID)
			}
			qty := decimal.NewFromInt(int64(item.Quantity))
			sale := item.UnitPrice.Mul(qty)
			cost := item.Product.CostPrice.Mul(qty)

			ro.Items = append(ro.Items, ReportItem{
				Product:   name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				UnitCost:  item.Product.CostPrice,
				Subtotal:  item.Subtotal,
			})
			ro.TotalSale = ro.TotalSale.Add(sale)
			ro.Profit = ro.Profit.Add(sale.Sub(cost))

			productUnits[name] += item.Quantity
		}

		monthKey := order.CreatedAt.Format("2006-01")
		if v, ok := monthly[monthKey]; ok {
			monthly[monthKey] = v.Add(ro.TotalSale)
		} else {
			monthly[monthKey] = ro.TotalSale
		}

		report.Summary.TotalSales = report.Summary.TotalSales.Add(ro.TotalSale)
		report.Summary.TotalProfit = report.Summary.TotalProfit.Add(ro.Profit)
		report.Orders = append(report.Orders, ro)
	}
	report.Summary.TotalOrders = len(report.Orders)

	for month, value := range monthly {
		report.Monthly = append(report.Monthly, MonthlySales{Month: month, Value: value})
	}
	sort.Slice(report.Monthly, func(i, j int) bool {
		return report.Monthly[i].Month < report.Monthly[j].Month
	})

	for name, qty := range productUnits {
		report.TopProducts = append(report.TopProducts, TopProductSales{Name: name, Quantity: qty})
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		if report.TopProducts[i].Quantity != report.TopProducts[j].Quantity {
			return report.TopProducts[i].Quantity > report.TopProducts[j].Quantity
		}
		return report.TopProducts[i].Name < report.TopProducts[j].Name
	})
	if len(report.TopProducts) > reportTopProductsLimit {
		report.TopProducts = report.TopProducts[:reportTopProductsLimit]
	}

	return report, nil
}
