package models

// Review is a user's rating of a product, 1-5 inclusive. A user/product
// pair may have any number of reviews.
type Review struct {
	ReviewID   int    `json:"review_id" gorm:"column:review_id;primaryKey"`
	UserID     int    `json:"user_id" gorm:"column:user_id;index;not null"`
	ProductID  int    `json:"product_id" gorm:"column:product_id;index;not null"`
	Rating     int    `json:"rating" gorm:"not null"`
	ReviewText string `json:"review_text" gorm:"type:text"`
}

func (Review) TableName() string { return "reviews" }
