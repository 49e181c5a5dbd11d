package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"warehouse-ledger/src/models"
	"warehouse-ledger/src/repositories"
	"warehouse-ledger/src/services"
)

// newTestDB opens a fresh in-memory database per test. The uuid in the
// dsn keeps parallel tests from sharing state through sqlite's shared
// cache.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:ledger_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Item{},
		&models.Transaction{},
		&models.TransactionSequence{},
		&models.RejectLogEntry{},
		&models.StockAdjustment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func newTransactionService(db *gorm.DB) *services.TransactionService {
	return &services.TransactionService{
		DB:           db,
		Items:        &repositories.ItemRepository{DB: db},
		Transactions: &repositories.TransactionRepository{DB: db},
		Log:          zerolog.Nop(),
	}
}

func newImportService(db *gorm.DB) *services.ImportService {
	return &services.ImportService{
		DB:    db,
		Items: &repositories.ItemRepository{DB: db},
		Log:   zerolog.Nop(),
	}
}

func newItemService(db *gorm.DB) *services.ItemService {
	return &services.ItemService{
		DB:   db,
		Repo: &repositories.ItemRepository{DB: db},
		Log:  zerolog.Nop(),
	}
}

func newRejectLogService(db *gorm.DB) *services.RejectLogService {
	return &services.RejectLogService{
		DB:   db,
		Repo: &repositories.RejectLogRepository{DB: db},
		Log:  zerolog.Nop(),
	}
}

// mustCreateItem seeds a catalog entry with the given opening stock.
func mustCreateItem(t *testing.T, db *gorm.DB, sku, name string, stock float64) *models.Item {
	t.Helper()

	item := &models.Item{
		SKU:            sku,
		Name:           name,
		Unit:           "pcs",
		ConversionRate: 1,
		CurrentStock:   stock,
		Status:         models.ItemStatusActive,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create item %s: %v", sku, err)
	}
	return item
}

// mustCreatePackagedItem is mustCreateItem with a secondary packaging
// unit, e.g. 1 Box = rate pcs.
func mustCreatePackagedItem(t *testing.T, db *gorm.DB, sku, name string, stock, rate float64) *models.Item {
	t.Helper()

	item := &models.Item{
		SKU:            sku,
		Name:           name,
		Unit:           "pcs",
		SecondaryUnit:  "Box",
		ConversionRate: rate,
		CurrentStock:   stock,
		Status:         models.ItemStatusActive,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create item %s: %v", sku, err)
	}
	return item
}

// reloadStock reads the persisted stock level back from the database.
func reloadStock(t *testing.T, db *gorm.DB, id uuid.UUID) float64 {
	t.Helper()

	var item models.Item
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload item %s: %v", id, err)
	}
	return item.CurrentStock
}

func line(itemID uuid.UUID, qty float64) models.CartItem {
	return models.CartItem{ItemID: itemID, Quantity: qty}
}
