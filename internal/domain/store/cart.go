package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cart struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	Items     []*CartItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:CartID;references:ID" json:"items"`
}

func (Cart) TableName() string { return "cart" }

// BeforeCreate assigns the opaque cart token; sqlite has no uuid default.
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TotalPrice sums the loaded items. Items without a loaded product count as zero.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_cart_product" json:"cart_id"`
	Cart      *Cart     `gorm:"foreignKey:CartID;references:ID" json:"-"`
	ProductID uint      `gorm:"column:product_id;not null;uniqueIndex:idx_cart_item_cart_product" json:"product_id"`
	Product   *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int       `gorm:"column:quantity;type:smallint;not null;check:chk_cart_item_quantity,quantity BETWEEN 1 AND 32767" json:"quantity"`
}

func (CartItem) TableName() string { return "cart_item" }

func (i *CartItem) TotalPrice() decimal.Decimal {
	if i == nil || i.Product == nil {
		return decimal.Zero
	}
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
