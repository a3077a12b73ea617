package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberops/internal/domain/booking"
	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/schedule"
	ucBooking "github.com/BruksfildServices01/barberops/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	createUC       *ucBooking.CreateBooking
	transitionUC   *ucBooking.Transition
	listByDateUC   *ucBooking.ListBookingsByDate
	listByMonthUC  *ucBooking.ListBookingsByMonth
	availabilityUC *ucBooking.GetAvailability

	repo domain.Repository
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	transitionUC *ucBooking.Transition,
	listByDateUC *ucBooking.ListBookingsByDate,
	listByMonthUC *ucBooking.ListBookingsByMonth,
	availabilityUC *ucBooking.GetAvailability,
	repo domain.Repository,
) *BookingHandler {
	return &BookingHandler{
		db:             db,
		createUC:       createUC,
		transitionUC:   transitionUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		availabilityUC: availabilityUC,
		repo:           repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerID    *uint  `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	StaffID *uint `json:"staff_id"`

	Service string  `json:"service" binding:"required"`
	Price   float64 `json:"price"`

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:mm
	Notes string `json:"notes"`
}

type UpdateBookingRequest struct {
	CustomerID    *uint    `json:"customer_id,omitempty"`
	CustomerName  *string  `json:"customer_name,omitempty"`
	StaffID       *uint    `json:"staff_id,omitempty"`
	Service       *string  `json:"service,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Time          *string  `json:"time,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	PaymentStatus *string  `json:"payment_status,omitempty"`
}

type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.CustomerID == nil && req.CustomerName == "" {
		httperr.BadRequest(c, "missing_customer", "Informe o cliente.")
		return
	}

	// sem staff_id explícito o agendamento fica com quem criou
	staffID := userID
	if req.StaffID != nil {
		staffID = *req.StaffID
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ShopID:        shopID,
		StaffID:       staffID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Service:       req.Service,
		Price:         req.Price,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})

	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "shop_not_found", "Barbearia não encontrada.")
		return
	}

	if _, err := parseDateInShop(shop, dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), shopID, dateStr, optionalStaffID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	bookings, err := h.listByMonthUC.Execute(c.Request.Context(), shopID, year, month, optionalStaffID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "shop_not_found", "Barbearia não encontrada.")
		return
	}

	if _, err := parseDateInShop(shop, dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	views, err := h.availabilityUC.Execute(c.Request.Context(), shop, dateStr, optionalStaffID(c))
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": views,
	})
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.PaymentStatus != nil && !domain.IsValidPaymentStatus(domain.PaymentStatus(*req.PaymentStatus)) {
		httperr.BadRequest(c, "invalid_payment_status", "Status de pagamento inválido.")
		return
	}
	if req.Time != nil {
		t := schedule.NormalizeTime(*req.Time)
		req.Time = &t
	}

	updated, err := h.repo.Update(c.Request.Context(), shopID, id, domain.UpdateFields{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		StaffID:       req.StaffID,
		Service:       req.Service,
		Price:         req.Price,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_booking", "Erro ao atualizar agendamento.")
		return
	}
	if updated == nil {
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), shopID, id); err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Erro ao excluir agendamento.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// COMPLETE / CANCEL / PAYMENT
// ======================================================

func (h *BookingHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "shop_not_found", "Barbearia não encontrada.")
		return
	}

	b, err := h.transitionUC.Complete(c.Request.Context(), shopID, userID, id, shop.Timezone)
	if err != nil {
		h.writeTransitionError(c, err, "concluído")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "shop_not_found", "Barbearia não encontrada.")
		return
	}

	b, err := h.transitionUC.Cancel(c.Request.Context(), shopID, userID, id, shop.Timezone)
	if err != nil {
		h.writeTransitionError(c, err, "cancelado")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) SetPayment(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.transitionUC.SetPaymentStatus(c.Request.Context(), shopID, userID, id, req.PaymentStatus)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_payment_status") {
			httperr.BadRequest(c, "invalid_payment_status", "Status de pagamento inválido.")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_booking", "Erro ao atualizar pagamento.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) writeTransitionError(c *gin.Context, err error, action string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}
	if httperr.IsBusiness(err, "invalid_state") {
		httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser "+action+".")
		return
	}
	httperr.Internal(c, "failed_to_update_booking", "Erro ao atualizar agendamento.")
}
