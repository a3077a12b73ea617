package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/logger"
	"github.com/BruksfildServices01/barberops/internal/models"
)

// Defaults aplicados quando a barbearia ainda não tem configuração salva.
const (
	DefaultOpeningTime = "09:00"
	DefaultClosingTime = "20:00"

	defaultDailyTarget   = 1000
	defaultWeeklyTarget  = 6000
	defaultMonthlyTarget = 25000

	defaultBarberCommission  = 0.40
	defaultManagerCommission = 0.10
	defaultTaxRate           = 0.06
)

type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

func Defaults(shopName string) models.ShopSettings {
	return models.ShopSettings{
		ShopName:          shopName,
		OpeningTime:       DefaultOpeningTime,
		ClosingTime:       DefaultClosingTime,
		DailyTarget:       defaultDailyTarget,
		WeeklyTarget:      defaultWeeklyTarget,
		MonthlyTarget:     defaultMonthlyTarget,
		BarberCommission:  defaultBarberCommission,
		ManagerCommission: defaultManagerCommission,
		TaxRate:           defaultTaxRate,
	}
}

// Get nunca devolve erro: quem chama sempre recebe uma configuração usável.
// Linha ausente (ou sem horários) é preenchida com defaults e persistida;
// falha de banco degrada para defaults só em memória, sem persistir.
func (r *Resolver) Get(ctx context.Context, shopName string) *models.ShopSettings {
	var s models.ShopSettings
	err := r.db.WithContext(ctx).
		Where("shop_name = ?", shopName).
		First(&s).Error

	switch {
	case err == nil:
		if s.OpeningTime == "" || s.ClosingTime == "" {
			// linha existente mas incompleta: completa e regrava
			def := Defaults(shopName)
			if s.OpeningTime == "" {
				s.OpeningTime = def.OpeningTime
			}
			if s.ClosingTime == "" {
				s.ClosingTime = def.ClosingTime
			}
			if err := r.db.WithContext(ctx).Save(&s).Error; err != nil {
				logger.Error.Errorf("settings: failed to backfill hours for %q: %v", shopName, err)
			}
		}
		return &s

	case errors.Is(err, gorm.ErrRecordNotFound):
		s = Defaults(shopName)
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			logger.Error.Errorf("settings: failed to persist defaults for %q: %v", shopName, err)
		}
		return &s

	default:
		// nunca bloquear a tela por causa de configuração
		logger.Error.Errorf("settings: load failed for %q, serving in-memory defaults: %v", shopName, err)
		s = Defaults(shopName)
		return &s
	}
}

// SavePartial carrega apenas os campos enviados; nulo não mexe.
type SavePartial struct {
	OpeningTime *string  `json:"opening_time"`
	ClosingTime *string  `json:"closing_time"`
	DailyTarget *float64 `json:"daily_target"`

	WeeklyTarget  *float64 `json:"weekly_target"`
	MonthlyTarget *float64 `json:"monthly_target"`

	BarberCommission  *float64 `json:"barber_commission"`
	ManagerCommission *float64 `json:"manager_commission"`
	TaxRate           *float64 `json:"tax_rate"`
}

// Save faz upsert por nome da barbearia. Último que grava, ganha;
// não há detecção de conflito.
func (r *Resolver) Save(ctx context.Context, shopName string, in SavePartial) error {
	s := r.Get(ctx, shopName)

	if in.OpeningTime != nil {
		s.OpeningTime = *in.OpeningTime
	}
	if in.ClosingTime != nil {
		s.ClosingTime = *in.ClosingTime
	}
	if in.DailyTarget != nil {
		s.DailyTarget = *in.DailyTarget
	}
	if in.WeeklyTarget != nil {
		s.WeeklyTarget = *in.WeeklyTarget
	}
	if in.MonthlyTarget != nil {
		s.MonthlyTarget = *in.MonthlyTarget
	}
	if in.BarberCommission != nil {
		s.BarberCommission = *in.BarberCommission
	}
	if in.ManagerCommission != nil {
		s.ManagerCommission = *in.ManagerCommission
	}
	if in.TaxRate != nil {
		s.TaxRate = *in.TaxRate
	}

	return r.db.WithContext(ctx).Save(s).Error
}
