package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/models"
	"github.com/BruksfildServices01/barberops/internal/schedule"
	"github.com/BruksfildServices01/barberops/internal/settings"
	ucBooking "github.com/BruksfildServices01/barberops/internal/usecase/booking"
)

// ======================================================
// HANDLER (sem autenticação; a barbearia vem pelo slug)
// ======================================================

type PublicHandler struct {
	db             *gorm.DB
	createUC       *ucBooking.CreateBooking
	availabilityUC *ucBooking.GetAvailability
	settings       *settings.Resolver
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	availabilityUC *ucBooking.GetAvailability,
	resolver *settings.Resolver,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		createUC:       createUC,
		availabilityUC: availabilityUC,
		settings:       resolver,
	}
}

type PublicCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	Service string  `json:"service" binding:"required"`
	Price   float64 `json:"price"`

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:mm
	Notes string `json:"notes"`
}

func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.Shop, bool) {
	var shop models.Shop
	if err := h.db.Where("slug = ?", c.Param("slug")).First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Barbearia não encontrada.")
		return nil, false
	}
	return &shop, true
}

// Info expõe os dados mínimos da vitrine pública.
func (h *PublicHandler) Info(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	cfg := h.settings.Get(c.Request.Context(), shop.Name)

	c.JSON(http.StatusOK, gin.H{
		"shop": gin.H{
			"name":     shop.Name,
			"slug":     shop.Slug,
			"phone":    shop.Phone,
			"address":  shop.Address,
			"timezone": shop.Timezone,
		},
		"opening_time": cfg.OpeningTime,
		"closing_time": cfg.ClosingTime,
		"slots":        schedule.GenerateTimeSlots(cfg.OpeningTime, cfg.ClosingTime),
	})
}

// AvailabilityForClient reusa a mesma visão de agenda da área logada.
func (h *PublicHandler) AvailabilityForClient(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
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

	// o público não vê quem está agendado, só a ocupação
	type publicSlot struct {
		Time string `json:"time"`
		Busy int    `json:"busy"`
		Past bool   `json:"past"`
	}
	out := make([]publicSlot, 0, len(views))
	for _, v := range views {
		out = append(out, publicSlot{Time: v.Time, Busy: len(v.Bookings), Past: v.Past})
	}

	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": out})
}

// CreateBooking grava o agendamento vindo da página pública. O dono
// da barbearia fica como responsável; o cliente é criado pelo nome.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var owner models.User
	if err := h.db.
		Where("shop_id = ? AND role = ?", shop.ID, "owner").
		First(&owner).Error; err != nil {

		httperr.Internal(c, "owner_not_found", "Barbearia sem responsável configurado.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ShopID:        shop.ID,
		StaffID:       owner.ID,
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

	c.JSON(http.StatusCreated, gin.H{
		"id":     created.ID,
		"date":   created.Date,
		"time":   created.Time,
		"status": created.Status,
	})
}
