package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barberops/internal/domain/booking"
	"github.com/BruksfildServices01/barberops/internal/dto"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	shopID uint,
	date string,
	staffID *uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListByDate(ctx, shopID, date, staffID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:            b.ID,
			Date:          b.Date,
			Time:          b.Time,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			CustomerName:  b.DisplayName(),
			StaffName:     b.Staff.Name,
			Service:       b.Service,
			Price:         b.Price,
		})
	}

	return out, nil
}
