package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopID uint `json:"shop_id"`

	StaffID uint `json:"staff_id"`
	Staff   User `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	// CustomerID pode ser nulo: nesse caso CustomerName é a referência
	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	CustomerName string `gorm:"size:100" json:"customer_name"`

	Service string  `gorm:"size:100;not null" json:"service"`
	Price   float64 `json:"price"`

	Date string `gorm:"size:10;index" json:"date"` // 2006-01-02
	Time string `gorm:"size:5" json:"time"`        // HH:MM, sem segundos

	Status        string `gorm:"size:20;default:'scheduled'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	Notes string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName resolve o nome do cliente: cadastro quando vinculado,
// texto livre como fallback.
func (b *Booking) DisplayName() string {
	if b.Customer != nil && b.Customer.Name != "" {
		return b.Customer.Name
	}
	return b.CustomerName
}
