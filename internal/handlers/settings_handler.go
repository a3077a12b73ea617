package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/schedule"
	"github.com/BruksfildServices01/barberops/internal/settings"
)

type SettingsHandler struct {
	db       *gorm.DB
	resolver *settings.Resolver
}

func NewSettingsHandler(db *gorm.DB, resolver *settings.Resolver) *SettingsHandler {
	return &SettingsHandler{db: db, resolver: resolver}
}

// Get nunca falha para o cliente: ausência de linha vira default persistido,
// falha de banco vira default em memória.
func (h *SettingsHandler) Get(c *gin.Context) {
	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "shop_not_found", "Barbearia não encontrada.")
		return
	}

	s := h.resolver.Get(c.Request.Context(), shop.Name)

	c.JSON(http.StatusOK, gin.H{
		"settings": s,
		"slots":    schedule.GenerateTimeSlots(s.OpeningTime, s.ClosingTime),
	})
}

func (h *SettingsHandler) Save(c *gin.Context) {
	shop, err := shopFromContext(c, h.db)
	if err != nil {
		httperr.Internal(c, "shop_not_found", "Barbearia não encontrada.")
		return
	}

	var req settings.SavePartial
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.resolver.Save(c.Request.Context(), shop.Name, req); err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Erro ao salvar configurações.")
		return
	}

	c.JSON(http.StatusOK, h.resolver.Get(c.Request.Context(), shop.Name))
}
