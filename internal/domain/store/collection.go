package store

type Collection struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"column:title;type:varchar(255);not null" json:"title"`

	// ProductsCount is filled by annotated reads only.
	ProductsCount int64 `gorm:"column:products_count;->;-:migration" json:"products_count"`
}

func (Collection) TableName() string { return "collection" }
