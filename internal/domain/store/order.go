package store

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending  = "P"
	PaymentStatusComplete = "C"
	PaymentStatusFailed   = "F"
)

// Order and OrderItem are owned by the ordering flow. The catalog only reads
// order_item to decide whether a product may be deleted.
type Order struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	PlacedAt      time.Time    `gorm:"column:placed_at;autoCreateTime;not null" json:"placed_at"`
	PaymentStatus string       `gorm:"column:payment_status;type:varchar(1);not null;default:P" json:"payment_status"`
	Items         []*OrderItem `gorm:"constraint:OnDelete:RESTRICT;foreignKey:OrderID;references:ID" json:"items,omitempty"`
}

func (Order) TableName() string { return "customer_order" }

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"column:order_id;not null;index" json:"order_id"`
	Order     *Order          `gorm:"foreignKey:OrderID;references:ID" json:"-"`
	ProductID uint            `gorm:"column:product_id;not null;index" json:"product_id"`
	Product   *Product        `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ProductID;references:ID" json:"-"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(6,2);not null" json:"unit_price"`
}

func (OrderItem) TableName() string { return "order_item" }
