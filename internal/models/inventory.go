package models

import "time"

type EquipmentItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Category  string `gorm:"size:50" json:"category"`
	Condition string `gorm:"size:20;default:'good'" json:"condition"`

	PurchaseDate    string `gorm:"size:10" json:"purchase_date"`
	NextMaintenance string `gorm:"size:10" json:"next_maintenance"`
	Notes           string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SupplyItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Unit     string `gorm:"size:20" json:"unit"`
	Quantity int    `json:"quantity"`

	// Abaixo desse nível o item entra na lista de reposição
	ReorderThreshold int    `json:"reorder_threshold"`
	LastRestocked    string `gorm:"size:10" json:"last_restocked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
