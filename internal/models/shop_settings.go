package models

import "time"

// Uma linha por barbearia, chaveada pelo nome. Criada sob demanda com
// defaults quando o primeiro acesso não encontra a linha.
type ShopSettings struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ShopName string `gorm:"size:100;uniqueIndex;not null" json:"shop_name"`

	OpeningTime string `gorm:"size:5" json:"opening_time"`
	ClosingTime string `gorm:"size:5" json:"closing_time"`

	DailyTarget   float64 `json:"daily_target"`
	WeeklyTarget  float64 `json:"weekly_target"`
	MonthlyTarget float64 `json:"monthly_target"`

	BarberCommission  float64 `json:"barber_commission"`
	ManagerCommission float64 `json:"manager_commission"`
	TaxRate           float64 `json:"tax_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
