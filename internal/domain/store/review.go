package store

import "time"

type Review struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	Product     *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"-"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Date        time.Time `gorm:"column:date;autoCreateTime;not null" json:"date"`
}

func (Review) TableName() string { return "review" }
