package models

// User is a registered customer. Referenced by Order and Review.
type User struct {
	UserID int    `json:"user_id" gorm:"column:user_id;primaryKey"`
	Name   string `json:"name" gorm:"type:varchar(255);not null"`
	Email  string `json:"email" gorm:"type:varchar(255)"`
	City   string `json:"city" gorm:"type:varchar(255)"`
}

func (User) TableName() string { return "users" }
