package models

import "time"

// Cliente simples, sem login, vinculado à barbearia
type Customer struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	Notes string `gorm:"size:255" json:"notes"`

	// Última visita (dia, formato 2006-01-02); atualizada ao concluir atendimento
	LastVisit *string `gorm:"size:10" json:"last_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
