package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/olekukonko/tablewriter"

	"shopfront/internal/config"
	"shopfront/internal/db"
	"shopfront/internal/repository"
	"shopfront/internal/service"
)

func main() {
	showOrders := flag.Bool("orders", false, "include the per-order breakdown")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	orderRepo := repository.NewOrderRepository(gormDB)
	reportService := service.NewReportService(orderRepo)

	report, err := reportService.SalesReport(context.Background())
	if err != nil {
		log.Fatalf("failed to build sales report: %v", err)
	}

	fmt.Println("Sales summary")
	summary := tablewriter.NewTable(os.Stdout)
	summary.Header("Total sales", "Total profit", "Orders")
	summary.Append(report.Summary.TotalSales.StringFixed(2), report.Summary.TotalProfit.StringFixed(2), fmt.Sprint(report.Summary.TotalOrders))
	if err := summary.Render(); err != nil {
		log.Fatalf("render summary: %v", err)
	}

	if len(report.Monthly) > 0 {
		fmt.Println("\nMonthly sales")
		monthly := tablewriter.NewTable(os.Stdout)
		monthly.Header("Month", "Sales")
		for _, m := range report.Monthly {
			monthly.Append(m.Month, m.Value.StringFixed(2))
		}
		if err := monthly.Render(); err != nil {
			log.Fatalf("render monthly: %v", err)
		}
	}

	if len(report.TopProducts) > 0 {
		fmt.Println("\nTop products by units sold")
		top := tablewriter.NewTable(os.Stdout)
		top.Header("Product", "Units")
		for _, p := range report.TopProducts {
			top.Append(p.Name, fmt.Sprint(p.Quantity))
		}
		if err := top.Render(); err != nil {
			log.Fatalf("render top products: %v", err)
		}
	}

	if *showOrders && len(report.Orders) > 0 {
		fmt.Println("\nOrders")
		orders := tablewriter.NewTable(os.Stdout)
		orders.Header("ID", "Number", "Date", "Status", "Sale", "Profit")
		for _, o := range report.Orders {
			orders.Append(
				fmt.Sprint(o.ID),
				o.Number,
				o.Date,
				o.Status,
				o.TotalSale.StringFixed(2),
				o.Profit.StringFixed(2),
			)
		}
		if err := orders.Render(); err != nil {
			log.Fatalf("render orders: %v", err)
		}
	}
}
