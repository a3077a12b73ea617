package models

import "time"

type IncidentReport struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	// Referência opaca usada no nome do arquivo da foto e no compartilhamento
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ReporterID uint `json:"reporter_id"`

	Date        string `gorm:"size:10;index" json:"date"`
	Severity    string `gorm:"size:20;default:'low'" json:"severity"`
	Description string `gorm:"size:1000;not null" json:"description"`
	ActionTaken string `gorm:"size:1000" json:"action_taken"`

	PhotoURL string `gorm:"size:500" json:"photo_url"`

	Status string `gorm:"size:20;default:'open'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
