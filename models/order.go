package models

import "time"

// Order is one checkout by a user. TotalAmount is derived from the
// order's items (sum of quantity*price) and must stay consistent with them.
type Order struct {
	OrderID     int       `json:"order_id" gorm:"column:order_id;primaryKey"`
	UserID      int       `json:"user_id" gorm:"column:user_id;index;not null"`
	OrderDate   time.Time `json:"order_date" gorm:"column:order_date;index"`
	TotalAmount float64   `json:"total_amount" gorm:"column:total_amount"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is a single product line within an order.
type OrderItem struct {
	ItemID    int `json:"item_id" gorm:"column:item_id;primaryKey"`
	OrderID   int `json:"order_id" gorm:"column:order_id;index;not null"`
	ProductID int `json:"product_id" gorm:"column:product_id;index;not null"`
	Quantity  int `json:"quantity" gorm:"not null"`
}

func (OrderItem) TableName() string { return "order_items" }
