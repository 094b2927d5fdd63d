// internal/domain/catalog/entity.go
package catalog

// CategoryAll is the sentinel category id that matches every product.
const CategoryAll = "all"

// Product represents a purchasable catalog product. The catalog is fixed at
// build time and immutable for the process lifetime; prices are whole IDR.
type Product struct {
	ID         string `gorm:"primaryKey;size:50" json:"id"`
	Name       string `gorm:"not null;size:255" json:"name"`
	CategoryID string `gorm:"not null;index;size:50" json:"category_id"`
	Price      int64  `gorm:"not null" json:"price"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// Category groups products for filtering.
type Category struct {
	ID   string `gorm:"primaryKey;size:50" json:"id"`
	Name string `gorm:"not null;size:255" json:"name"`
}

// TableName overrides the table name
func (Category) TableName() string {
	return "categories"
}
