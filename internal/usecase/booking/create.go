package booking

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberops/internal/audit"
	domain "github.com/BruksfildServices01/barberops/internal/domain/booking"
	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/models"
	"github.com/BruksfildServices01/barberops/internal/schedule"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ShopID  uint
	StaffID uint

	// CustomerID vindo do seletor; nulo dispara o fallback por nome
	CustomerID    *uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Service string
	Price   float64

	Date  string // 2006-01-02
	Time  string // HH:MM ou HH:MM:SS
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute valida, resolve o cliente e grava. Não há verificação de
// conflito de horário: dois agendamentos no mesmo slot são permitidos
// e a agenda mostra os dois.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	slot := schedule.NormalizeTime(in.Time)
	if _, err := time.Parse("15:04", slot); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	name := strings.TrimSpace(in.CustomerName)
	customerID := in.CustomerID

	if customerID == nil && name != "" {
		customer, err := uc.repo.FindOrCreateCustomerByName(
			ctx,
			in.ShopID,
			name,
			in.CustomerPhone,
			in.CustomerEmail,
		)
		if err != nil {
			return nil, err
		}
		customerID = &customer.ID
	}

	b := &models.Booking{
		ShopID:        in.ShopID,
		StaffID:       in.StaffID,
		CustomerID:    customerID,
		CustomerName:  name,
		Service:       in.Service,
		Price:         in.Price,
		Date:          in.Date,
		Time:          slot,
		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentPending),
		Notes:         in.Notes,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		UserID:   &in.StaffID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
