package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/barberops/internal/domain/booking"
	"github.com/BruksfildServices01/barberops/internal/models"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(
	repo domain.Repository,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
	}
}

// Execute traz o mês inteiro (pintura do calendário). O intervalo é
// inclusivo nas duas pontas.
func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	shopID uint,
	year int,
	month int,
	staffID *uint,
) ([]models.Booking, error) {

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := last.Format("2006-01-02")

	return uc.repo.ListByDateRange(ctx, shopID, start, end, staffID)
}
