package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/models"
	"github.com/BruksfildServices01/barberops/internal/timezone"
)

const dateLayout = "2006-01-02"

// resolve o timezone oficial da barbearia
func locationFromShop(shop *models.Shop) *time.Location {
	if shop != nil {
		return timezone.Location(shop.Timezone)
	}
	return timezone.Location("")
}

func nowInShop(shop *models.Shop) time.Time {
	return time.Now().In(locationFromShop(shop))
}

func parseDateInShop(shop *models.Shop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, dateStr, locationFromShop(shop))
}

// shopFromContext carrega a barbearia do usuário autenticado.
func shopFromContext(c *gin.Context, db *gorm.DB) (*models.Shop, error) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var shop models.Shop
	if err := db.First(&shop, shopID).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// optionalStaffID lê o filtro ?staff_id= quando presente.
func optionalStaffID(c *gin.Context) *uint {
	raw := c.Query("staff_id")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

func parseIDParam(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
