package booking

import (
	"context"

	"github.com/BruksfildServices01/barberops/internal/models"
)

// UpdateFields carrega só os campos presentes no pedido de edição;
// ponteiro nulo significa "não mexer".
type UpdateFields struct {
	CustomerID    *uint
	CustomerName  *string
	StaffID       *uint
	Service       *string
	Price         *float64
	Date          *string
	Time          *string
	Status        *string
	PaymentStatus *string
	Notes         *string
}

type Repository interface {
	// -------- Booking (leitura) --------
	GetByID(
		ctx context.Context,
		shopID uint,
		id uint,
	) (*models.Booking, error)

	// ListByDate filtra um dia; staffID nulo traz a agenda da casa inteira.
	ListByDate(
		ctx context.Context,
		shopID uint,
		date string,
		staffID *uint,
	) ([]models.Booking, error)

	// ListByDateRange é inclusivo nas duas pontas, ordenado por (date, time).
	ListByDateRange(
		ctx context.Context,
		shopID uint,
		start string,
		end string,
		staffID *uint,
	) ([]models.Booking, error)

	// -------- Booking (escrita) --------
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// Update aplica só os campos presentes. Id inexistente devolve (nil, nil).
	Update(
		ctx context.Context,
		shopID uint,
		id uint,
		fields UpdateFields,
	) (*models.Booking, error)

	// Save regrava o registro inteiro (usado pelas transições de estado).
	Save(
		ctx context.Context,
		b *models.Booking,
	) error

	Delete(
		ctx context.Context,
		shopID uint,
		id uint,
	) error

	// -------- Customer --------
	// FindOrCreateCustomerByName torna explícito o fallback por nome que
	// antes ficava escondido no handler de criação.
	FindOrCreateCustomerByName(
		ctx context.Context,
		shopID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	TouchCustomerLastVisit(
		ctx context.Context,
		customerID uint,
		date string,
	) error
}
