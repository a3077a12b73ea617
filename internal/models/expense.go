package models

import "time"

type Expense struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Category    string  `gorm:"size:50" json:"category"`
	Description string  `gorm:"size:255" json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `gorm:"size:10;index" json:"date"` // 2006-01-02

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
