// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/rsvp-backend/internal/domain/catalog"
	"github.com/your-org/rsvp-backend/internal/domain/reservation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&catalog.Category{},
		&catalog.Product{},
		&reservation.Reservation{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_reservation_created_at ON reservation(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_reservation_price_total ON reservation(price_total)",
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedCatalog mirrors the build-time catalog into Postgres so reporting
// queries can join on it. The in-memory catalog stays the source of truth.
func (m *Migration) SeedCatalog() error {
	log.Println("🔄 Seeding catalog data...")

	for _, category := range catalog.Categories {
		if category.ID == catalog.CategoryAll {
			continue // display sentinel, not a real category
		}
		row := category
		if err := m.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.ID, err)
		}
	}

	for _, product := range catalog.Products {
		row := product
		if err := m.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category_id", "price"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", product.ID, err)
		}
	}

	log.Println("✅ Catalog seeding completed successfully")
	return nil
}

// GetTableInfo logs row counts for the main tables (development helper)
func (m *Migration) GetTableInfo() {
	tables := []string{"reservation", "products", "categories"}
	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			log.Printf("Table %s: error counting rows: %v", table, err)
			continue
		}
		log.Printf("Table %s: %d rows", table, count)
	}
}
