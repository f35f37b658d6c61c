package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shopfront/internal/config"
	"shopfront/internal/db"
	"shopfront/internal/model"
	"shopfront/internal/repository"
)

const (
	adminEmail    = "admin@shopfront.local"
	adminPassword = "admin123"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Supplier{},
		&model.Product{},
		&model.ProductImage{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	supplierRepo := repository.NewSupplierRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	admin, err := seedAdmin(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	suppliers, err := seedSuppliers(ctx, supplierRepo, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed suppliers: %v", err)
	}

	created, err := seedProducts(ctx, productRepo, admin.ID, suppliers)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin user: %s", admin.Email)
	log.Printf("  - Suppliers: %d", len(suppliers))
	log.Printf("  - New products created: %d", created)
}

func seedAdmin(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err == nil {
		log.Printf("Admin user already exists: %s", adminEmail)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hashed),
		UserType:     model.UserTypeAdmin,
		Street:       "Warehouse Road",
		Number:       "1",
		City:         "Sao Paulo",
		State:        "SP",
		Zipcode:      "01000-000",
		Country:      "Brazil",
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	log.Printf("Created admin user %s (password: %s)", adminEmail, adminPassword)
	return admin, nil
}

func seedSuppliers(ctx context.Context, repo repository.SupplierRepository, adminID uint) ([]model.Supplier, error) {
	seeds := []model.Supplier{
		{Name: "Pesca Norte Ltda", Email: "contato@pescanorte.example", CNPJ: "12.345.678/0001-90", Phone: "+55 11 4002-8922", Website: "https://pescanorte.example"},
		{Name: "Iscas do Sul", Email: "vendas@iscasdosul.example", CNPJ: "98.765.432/0001-10", Phone: "+55 51 3000-1234"},
	}

	existing, err := repo.List(ctx, repository.SupplierFilter{}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Println("Suppliers already present, skipping")
		return repo.List(ctx, repository.SupplierFilter{}, 0, 100)
	}

	for i := range seeds {
		seeds[i].CreatedBy = &adminID
		seeds[i].UpdatedBy = &adminID
		if err := repo.Create(ctx, &seeds[i]); err != nil {
			return nil, err
		}
	}
	return seeds, nil
}

func seedProducts(ctx context.Context, repo repository.ProductRepository, adminID uint, suppliers []model.Supplier) (int, error) {
	type seed struct {
		name        string
		description string
		price       string
		costPrice   string
		quantity    int
		supplier    int // index into suppliers, -1 for none
	}
	seeds := []seed{
		{"Spinning Rod 2.10m", "Two-piece carbon spinning rod", "149.90", "82.00", 25, 0},
		{"Baitcasting Reel X200", "8-bearing baitcasting reel", "289.00", "170.00", 12, 0},
		{"Soft Bait Kit 20pc", "Assorted soft plastic lures", "39.90", "14.50", 80, 1},
		{"Braided Line 300m", "0.23mm braided fishing line", "59.90", "28.00", 3, 1},
		{"Landing Net", "Foldable rubber-mesh landing net", "74.50", "41.00", 2, -1},
	}

	created := 0
	for _, s := range seeds {
		if _, err := repo.FindByName(ctx, s.name); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			return created, err
		}

		price, err := decimal.NewFromString(s.price)
		if err != nil {
			return created, err
		}
		cost, err := decimal.NewFromString(s.costPrice)
		if err != nil {
			return created, err
		}

		product := &model.Product{
			Name:        s.name,
			Description: s.description,
			Price:       price,
			CostPrice:   cost,
			Quantity:    s.quantity,
			CreatedBy:   &adminID,
			UpdatedBy:   &adminID,
		}
		if s.supplier >= 0 && s.supplier < len(suppliers) {
			product.SupplierID = &suppliers[s.supplier].ID
		}

		if err := repo.Create(ctx, product); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
