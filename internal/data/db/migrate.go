package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/domain/store"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&store.Collection{},
		&store.Product{},
		&store.Review{},

		// Carts
		&store.Cart{},
		&store.CartItem{},

		// Ordering (read by the product delete guard)
		&store.Order{},
		&store.OrderItem{},
	)
}

// EnsureSearchIndexes adds postgres-only indexes backing product search.
func EnsureSearchIndexes(db *gorm.DB) error {
	if db.Dialector.Name() != DriverPostgres {
		return nil
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_product_title_lower ON product (LOWER(title));`).Error; err != nil {
		return fmt.Errorf("create idx_product_title_lower: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_product_unit_price ON product (unit_price);`).Error; err != nil {
		return fmt.Errorf("create idx_product_unit_price: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_product_last_update ON product (last_update DESC);`).Error; err != nil {
		return fmt.Errorf("create idx_product_last_update: %w", err)
	}
	return nil
}
