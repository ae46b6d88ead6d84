package models

// Product is a catalog item. Referenced by OrderItem and Review.
type Product struct {
	ProductID int     `json:"product_id" gorm:"column:product_id;primaryKey"`
	Name      string  `json:"name" gorm:"type:varchar(255);not null"`
	Category  string  `json:"category" gorm:"type:varchar(100);index"`
	Price     float64 `json:"price" gorm:"not null"`
}

func (Product) TableName() string { return "products" }
