package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"warehouse-ledger/src/config"
	"warehouse-ledger/src/handlers"
	"warehouse-ledger/src/models"
	"warehouse-ledger/src/repositories"
	"warehouse-ledger/src/routes"
	"warehouse-ledger/src/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := config.NewLogger(cfg.App.LogLevel)

	db, err := config.InitDB(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	db.AutoMigrate(
		&models.Item{},
		&models.Transaction{},
		&models.TransactionSequence{},
		&models.RejectLogEntry{},
		&models.StockAdjustment{},
	)

	if err := seedSampleItems(db); err != nil {
		log.Printf("Failed to seed sample items: %v", err)
	}

	// Initialize repositories
	itemRepo := &repositories.ItemRepository{DB: db}
	txnRepo := &repositories.TransactionRepository{DB: db}
	rejectRepo := &repositories.RejectLogRepository{DB: db}
	adjustmentRepo := &repositories.AdjustmentRepository{DB: db}

	// Initialize services
	itemService := &services.ItemService{DB: db, Repo: itemRepo, Log: logger}
	txnService := &services.TransactionService{
		DB:           db,
		Items:        itemRepo,
		Transactions: txnRepo,
		Log:          logger,
	}
	importService := &services.ImportService{DB: db, Items: itemRepo, Log: logger}
	rejectService := &services.RejectLogService{DB: db, Repo: rejectRepo, Log: logger}

	// Initialize handlers
	itemHandler := &handlers.ItemHandler{Service: itemService}
	txnHandler := &handlers.TransactionHandler{Service: txnService}
	importHandler := &handlers.ImportHandler{Service: importService, Adjustments: adjustmentRepo}
	rejectHandler := &handlers.RejectLogHandler{Service: rejectService}

	// Setup router dengan recovery middleware
	router := gin.Default()

	api := router.Group("/api/v1")
	routes.RegisterItemRoutes(api.Group("/items"), itemHandler)
	routes.RegisterTransactionRoutes(api.Group("/transactions"), txnHandler)
	routes.RegisterImportRoutes(api.Group("/import"), importHandler)
	routes.RegisterRejectLogRoutes(api.Group("/reject-logs"), rejectHandler)

	// Start server
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func seedSampleItems(db *gorm.DB) error {
	var itemCount int64
	db.Model(&models.Item{}).Count(&itemCount)

	if itemCount > 0 {
		return nil
	}

	log.Println("Seeding sample items...")

	items := []models.Item{
		{
			SKU: "WH-001", Name: "Packing Tape 48mm", Category: "Packaging",
			Location: "Rack A1", Price: decimal.NewFromInt(12000),
			Unit: "pcs", SecondaryUnit: "Box", ConversionRate: 36,
			MinLevel: 36, Status: models.ItemStatusActive,
		},
		{
			SKU: "WH-002", Name: "Bubble Wrap Roll 50m", Category: "Packaging",
			Location: "Rack A2", Price: decimal.NewFromInt(85000),
			Unit: "roll", MinLevel: 5, Status: models.ItemStatusActive,
		},
		{
			SKU: "WH-003", Name: "Thermal Label 100x150", Category: "Labels",
			Location: "Rack B1", Price: decimal.NewFromInt(45000),
			Unit: "pcs", SecondaryUnit: "Roll", ConversionRate: 500,
			MinLevel: 500, Status: models.ItemStatusActive,
		},
	}

	for _, item := range items {
		if err := db.FirstOrCreate(&item, "sku = ?", item.SKU).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d items", len(items))

	return nil
}
