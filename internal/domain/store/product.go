package store

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string          `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug         string          `gorm:"column:slug;type:varchar(255);not null;index" json:"slug"`
	Description  string          `gorm:"column:description;type:text" json:"description"`
	UnitPrice    decimal.Decimal `gorm:"column:unit_price;type:decimal(6,2);not null" json:"unit_price"`
	Inventory    int             `gorm:"column:inventory;not null;default:0" json:"inventory"`
	LastUpdate   time.Time       `gorm:"column:last_update;autoUpdateTime;not null" json:"last_update"`
	CollectionID uint            `gorm:"column:collection_id;not null;index" json:"collection_id"`
	Collection   *Collection     `gorm:"constraint:OnDelete:RESTRICT;foreignKey:CollectionID;references:ID" json:"collection,omitempty"`
}

func (Product) TableName() string { return "product" }

// PriceWithTax applies rate to the unit price, rounded to cents.
func (p *Product) PriceWithTax(rate decimal.Decimal) decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(1).Add(rate)).Round(2)
}
