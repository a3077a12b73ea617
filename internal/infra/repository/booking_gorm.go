package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barberops/internal/domain/booking"
	"github.com/BruksfildServices01/barberops/internal/models"
	"github.com/BruksfildServices01/barberops/internal/schedule"
	"github.com/BruksfildServices01/barberops/internal/validators"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking (leitura)
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	shopID uint,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Staff").
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByDate(
	ctx context.Context,
	shopID uint,
	date string,
	staffID *uint,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Staff").
		Where("shop_id = ? AND date = ?", shopID, date)

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListByDateRange(
	ctx context.Context,
	shopID uint,
	start string,
	end string,
	staffID *uint,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Staff").
		Where("shop_id = ? AND date >= ? AND date <= ?", shopID, start, end)

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (escrita)
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	// o lado da escrita normaliza; o lado da leitura normaliza de novo
	b.Time = schedule.NormalizeTime(b.Time)
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	shopID uint,
	id uint,
	fields domain.UpdateFields,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if fields.CustomerID != nil {
		b.CustomerID = fields.CustomerID
	}
	if fields.CustomerName != nil {
		b.CustomerName = *fields.CustomerName
	}
	if fields.StaffID != nil {
		b.StaffID = *fields.StaffID
	}
	if fields.Service != nil {
		b.Service = *fields.Service
	}
	if fields.Price != nil {
		b.Price = *fields.Price
	}
	if fields.Date != nil {
		b.Date = *fields.Date
	}
	if fields.Time != nil {
		b.Time = schedule.NormalizeTime(*fields.Time)
	}
	if fields.Status != nil {
		b.Status = *fields.Status
	}
	if fields.PaymentStatus != nil {
		b.PaymentStatus = *fields.PaymentStatus
	}
	if fields.Notes != nil {
		b.Notes = *fields.Notes
	}

	if err := r.db.WithContext(ctx).Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) Save(
	ctx context.Context,
	b *models.Booking,
) error {
	b.Time = schedule.NormalizeTime(b.Time)
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(b).Error
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	shopID uint,
	id uint,
) error {
	// hard delete, sem lixeira
	return r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Delete(&models.Booking{}, id).Error
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) FindOrCreateCustomerByName(
	ctx context.Context,
	shopID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	name = strings.TrimSpace(name)
	phone = validators.NormalizePhone(phone)

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND LOWER(name) = LOWER(?)", shopID, name).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = models.Customer{
		ShopID: shopID,
		Name:   name,
		Phone:  phone,
		Email:  email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *BookingGormRepository) TouchCustomerLastVisit(
	ctx context.Context,
	customerID uint,
	date string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Update("last_visit", date).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
