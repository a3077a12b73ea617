package booking

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/audit"
	domain "github.com/BruksfildServices01/barberops/internal/domain/booking"
	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/logger"
	"github.com/BruksfildServices01/barberops/internal/models"
	"github.com/BruksfildServices01/barberops/internal/timezone"
)

type Transition struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransition(repo domain.Repository, audit *audit.Dispatcher) *Transition {
	return &Transition{repo: repo, audit: audit}
}

func (uc *Transition) Complete(
	ctx context.Context,
	shopID uint,
	userID uint,
	id uint,
	tz string,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(b, timezone.NowIn(tz)); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	// atendimento concluído marca a última visita do cliente
	if b.CustomerID != nil {
		if err := uc.repo.TouchCustomerLastVisit(ctx, *b.CustomerID, b.Date); err != nil {
			logger.Error.Errorf("booking: touch last visit: %v", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *Transition) Cancel(
	ctx context.Context,
	shopID uint,
	userID uint,
	id uint,
	tz string,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(b, timezone.NowIn(tz)); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *Transition) SetPaymentStatus(
	ctx context.Context,
	shopID uint,
	userID uint,
	id uint,
	status string,
) (*models.Booking, error) {

	if !domain.IsValidPaymentStatus(domain.PaymentStatus(status)) {
		return nil, httperr.ErrBusiness("invalid_payment_status")
	}

	updated, err := uc.repo.Update(ctx, shopID, id, domain.UpdateFields{PaymentStatus: &status})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, gorm.ErrRecordNotFound
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "booking_payment_" + status,
		Entity:   "booking",
		EntityID: &updated.ID,
	})

	return updated, nil
}
