package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/audit"
	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/media"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/models"
)

// Limite do corpo multipart aceito no upload de foto (10 MB).
const maxPhotoSize = 10 << 20

type IncidentHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
	audit    *audit.Dispatcher
}

func NewIncidentHandler(db *gorm.DB, uploader *media.Uploader, dispatcher *audit.Dispatcher) *IncidentHandler {
	return &IncidentHandler{db: db, uploader: uploader, audit: dispatcher}
}

type CreateIncidentRequest struct {
	Date        string `json:"date" binding:"required"`
	Severity    string `json:"severity" binding:"omitempty,oneof=low medium high critical"`
	Description string `json:"description" binding:"required"`
	ActionTaken string `json:"action_taken"`
}

type UpdateIncidentRequest struct {
	Date        *string `json:"date,omitempty"`
	Severity    *string `json:"severity,omitempty" binding:"omitempty,oneof=low medium high critical"`
	Description *string `json:"description,omitempty"`
	ActionTaken *string `json:"action_taken,omitempty"`
}

func (h *IncidentHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	q := h.db.Where("shop_id = ?", shopID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var incidents []models.IncidentReport
	if err := q.
		Order("date DESC, id DESC").
		Find(&incidents).Error; err != nil {

		httperr.Internal(c, "failed_to_list_incidents", "Erro ao listar ocorrências.")
		return
	}

	c.JSON(http.StatusOK, incidents)
}

func (h *IncidentHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	incident := models.IncidentReport{
		ShopID:      shopID,
		Reference:   uuid.NewString(),
		ReporterID:  userID,
		Date:        req.Date,
		Description: req.Description,
		ActionTaken: req.ActionTaken,
	}
	if req.Severity != "" {
		incident.Severity = req.Severity
	}

	if err := h.db.Create(&incident).Error; err != nil {
		httperr.Internal(c, "failed_to_create_incident", "Erro ao registrar ocorrência.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "incident_reported",
		Entity:   "incident",
		EntityID: &incident.ID,
		Metadata: gin.H{"severity": incident.Severity, "date": incident.Date},
	})

	c.JSON(http.StatusCreated, incident)
}

func (h *IncidentHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var incident models.IncidentReport
	if err := h.db.Where("id = ? AND shop_id = ?", id, shopID).First(&incident).Error; err != nil {
		httperr.NotFound(c, "incident_not_found", "Ocorrência não encontrada.")
		return
	}

	var req UpdateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Date != nil {
		incident.Date = *req.Date
	}
	if req.Severity != nil {
		incident.Severity = *req.Severity
	}
	if req.Description != nil {
		incident.Description = *req.Description
	}
	if req.ActionTaken != nil {
		incident.ActionTaken = *req.ActionTaken
	}

	if err := h.db.Save(&incident).Error; err != nil {
		httperr.Internal(c, "failed_to_update_incident", "Erro ao atualizar ocorrência.")
		return
	}

	c.JSON(http.StatusOK, incident)
}

// Resolve marca a ocorrência como resolvida e registra a ação tomada.
func (h *IncidentHandler) Resolve(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var incident models.IncidentReport
	if err := h.db.Where("id = ? AND shop_id = ?", id, shopID).First(&incident).Error; err != nil {
		httperr.NotFound(c, "incident_not_found", "Ocorrência não encontrada.")
		return
	}

	var req struct {
		ActionTaken string `json:"action_taken"`
	}
	_ = c.ShouldBindJSON(&req)

	if req.ActionTaken != "" {
		incident.ActionTaken = req.ActionTaken
	}
	incident.Status = "resolved"

	if err := h.db.Save(&incident).Error; err != nil {
		httperr.Internal(c, "failed_to_update_incident", "Erro ao atualizar ocorrência.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "incident_resolved",
		Entity:   "incident",
		EntityID: &incident.ID,
	})

	c.JSON(http.StatusOK, incident)
}

// UploadPhoto recebe multipart (campo "photo"), converte para webp
// e guarda no S3 sob a referência da ocorrência.
func (h *IncidentHandler) UploadPhoto(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	if h.uploader == nil {
		httperr.BadRequest(c, "uploads_disabled", "Upload de fotos não está configurado.")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var incident models.IncidentReport
	if err := h.db.Where("id = ? AND shop_id = ?", id, shopID).First(&incident).Error; err != nil {
		httperr.NotFound(c, "incident_not_found", "Ocorrência não encontrada.")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoSize)

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório (campo 'photo').")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadIncidentPhoto(c.Request.Context(), incident.Reference, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	incident.PhotoURL = url
	if err := h.db.Save(&incident).Error; err != nil {
		httperr.Internal(c, "failed_to_update_incident", "Erro ao atualizar ocorrência.")
		return
	}

	c.JSON(http.StatusOK, incident)
}

func (h *IncidentHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Where("shop_id = ?", shopID).Delete(&models.IncidentReport{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_incident", "Erro ao excluir ocorrência.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "incident_not_found", "Ocorrência não encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}
