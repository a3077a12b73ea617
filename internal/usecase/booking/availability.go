package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barberops/internal/domain/booking"
	"github.com/BruksfildServices01/barberops/internal/models"
	"github.com/BruksfildServices01/barberops/internal/schedule"
	"github.com/BruksfildServices01/barberops/internal/settings"
	"github.com/BruksfildServices01/barberops/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	settings *settings.Resolver
}

func NewGetAvailability(repo domain.Repository, s *settings.Resolver) *GetAvailability {
	return &GetAvailability{repo: repo, settings: s}
}

// Execute monta a visão do dia: grade de horários da barbearia com os
// agendamentos existentes sobrepostos.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	shop *models.Shop,
	date string,
	staffID *uint,
) ([]schedule.SlotView, error) {

	cfg := uc.settings.Get(ctx, shop.Name)

	slots := schedule.GenerateTimeSlots(cfg.OpeningTime, cfg.ClosingTime)

	bookings, err := uc.repo.ListByDate(ctx, shop.ID, date, staffID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	return schedule.BuildDayView(slots, bookings, date, now), nil
}
