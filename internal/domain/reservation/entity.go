// internal/domain/reservation/entity.go
package reservation

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderItem is a catalog product annotated with the chosen quantity and its
// derived line total. Persisted lists are sparse (qty > 0 only); the in-memory
// cart holds the dense, catalog-ordered superset.
type OrderItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	Price      int64  `json:"price"`
	Qty        int    `json:"qty"`
	TotalPrice int64  `json:"total_price"`
}

// OrderItems is stored as a JSONB column on the reservation row.
type OrderItems []OrderItem

// Value implements driver.Valuer
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		items = OrderItems{}
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner
func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = OrderItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported type for order items: %T", value)
	}
}

// Reservation represents a guest's RSVP row. Phone is the natural key; Items
// holds only lines with qty > 0 and is replaced wholesale on submission.
type Reservation struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Phone      string     `gorm:"uniqueIndex;not null;size:20" json:"phone"`
	Name       string     `gorm:"not null;size:255" json:"name"`
	NameAlias  string     `gorm:"size:255" json:"name_alias"`
	Items      OrderItems `gorm:"type:jsonb;default:'[]'" json:"items"`
	PriceTotal int64      `gorm:"not null;default:0" json:"price_total"`
	Pax        int        `gorm:"not null;default:0" json:"pax"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName overrides the table name
func (Reservation) TableName() string {
	return "reservation"
}

// DisplayName prefers the organizer-assigned alias over the sign-in name
func (r *Reservation) DisplayName() string {
	if r.NameAlias != "" {
		return r.NameAlias
	}
	return r.Name
}
