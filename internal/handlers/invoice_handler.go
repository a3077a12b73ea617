package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/audit"
	domainbooking "github.com/BruksfildServices01/barberops/internal/domain/booking"
	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/invoice"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/notify"
	"github.com/BruksfildServices01/barberops/internal/payments"
	"github.com/BruksfildServices01/barberops/internal/settings"
)

// InvoiceHandler monta e despacha recibos de agendamentos e cria
// links de pagamento do checkout hospedado.
type InvoiceHandler struct {
	db       *gorm.DB
	repo     domainbooking.Repository
	settings *settings.Resolver
	notify   *notify.Client
	payments *payments.LinkCreator
	audit    *audit.Dispatcher
}

func NewInvoiceHandler(
	db *gorm.DB,
	repo domainbooking.Repository,
	resolver *settings.Resolver,
	notifyClient *notify.Client,
	linkCreator *payments.LinkCreator,
	dispatcher *audit.Dispatcher,
) *InvoiceHandler {
	return &InvoiceHandler{
		db:       db,
		repo:     repo,
		settings: resolver,
		notify:   notifyClient,
		payments: linkCreator,
		audit:    dispatcher,
	}
}

type SendInvoiceRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Locale string `json:"locale" binding:"omitempty,oneof=pt en"`
}

// Preview devolve o recibo renderizado sem enviar nada.
func (h *InvoiceHandler) Preview(c *gin.Context) {
	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "failed_to_load_shop", "Erro ao carregar a barbearia.")
		return
	}
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	b, err := h.repo.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_booking", "Erro ao carregar o agendamento.")
		return
	}

	locale := c.DefaultQuery("locale", "pt")
	s := h.settings.Get(c.Request.Context(), shop.Name)

	subject, html := invoice.FormatInvoice(b, s, locale, nowInShop(shop))

	c.JSON(http.StatusOK, gin.H{
		"subject": subject,
		"html":    html,
		"total":   invoice.Total(b.Price),
	})
}

// Send renderiza o recibo e entrega ao despachante externo de email.
// Falha de envio não altera o agendamento.
func (h *InvoiceHandler) Send(c *gin.Context) {
	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "failed_to_load_shop", "Erro ao carregar a barbearia.")
		return
	}
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email de destino obrigatório.")
		return
	}
	locale := req.Locale
	if locale == "" {
		locale = "pt"
	}

	b, err := h.repo.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_booking", "Erro ao carregar o agendamento.")
		return
	}

	s := h.settings.Get(c.Request.Context(), shop.Name)
	subject, html := invoice.FormatInvoice(b, s, locale, nowInShop(shop))

	err = h.notify.Send(c.Request.Context(), notify.Payload{
		Type:      "invoice",
		BookingID: b.ID,
		EmailContent: &notify.EmailContent{
			To:      req.Email,
			Subject: subject,
			HTML:    html,
		},
	})
	if err != nil {
		if httperr.IsBusiness(err, "notifications_disabled") {
			httperr.BadRequest(c, "notifications_disabled", "Envio de notificações não está configurado.")
			return
		}
		httperr.Internal(c, "failed_to_send_invoice", "Erro ao enviar o recibo. Tente novamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "invoice_sent",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: gin.H{"email": req.Email, "locale": locale},
	})

	c.JSON(http.StatusOK, gin.H{"sent": true, "subject": subject})
}

// WhatsAppText devolve o texto de confirmação pronto para colar.
func (h *InvoiceHandler) WhatsAppText(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	b, err := h.repo.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_booking", "Erro ao carregar o agendamento.")
		return
	}

	locale := c.DefaultQuery("locale", "pt")

	c.JSON(http.StatusOK, gin.H{
		"text": invoice.FormatWhatsAppText(b, locale),
	})
}

// PaymentLink cria uma preferência de checkout para o agendamento.
func (h *InvoiceHandler) PaymentLink(c *gin.Context) {
	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "failed_to_load_shop", "Erro ao carregar a barbearia.")
		return
	}
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.payments == nil {
		httperr.BadRequest(c, "payments_disabled", "Pagamentos online não estão configurados.")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	b, err := h.repo.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_booking", "Erro ao carregar o agendamento.")
		return
	}

	link, err := h.payments.CreateBookingLink(c.Request.Context(), b, shop.Name)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_amount") {
			httperr.BadRequest(c, "invalid_amount", "Valor do agendamento precisa ser maior que zero.")
			return
		}
		httperr.Internal(c, "failed_to_create_payment_link", "Erro ao criar o link de pagamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "payment_link_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: gin.H{"preference_id": link.ID},
	})

	c.JSON(http.StatusOK, link)
}
