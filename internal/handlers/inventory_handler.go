package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/models"
)

type InventoryHandler struct {
	db *gorm.DB
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{db: db}
}

// ======================================================
// EQUIPAMENTOS
// ======================================================

type CreateEquipmentRequest struct {
	Name            string `json:"name" binding:"required"`
	Category        string `json:"category"`
	Condition       string `json:"condition" binding:"omitempty,oneof=good fair poor broken"`
	PurchaseDate    string `json:"purchase_date"`
	NextMaintenance string `json:"next_maintenance"`
	Notes           string `json:"notes"`
}

type UpdateEquipmentRequest struct {
	Name            *string `json:"name,omitempty"`
	Category        *string `json:"category,omitempty"`
	Condition       *string `json:"condition,omitempty" binding:"omitempty,oneof=good fair poor broken"`
	PurchaseDate    *string `json:"purchase_date,omitempty"`
	NextMaintenance *string `json:"next_maintenance,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (h *InventoryHandler) ListEquipment(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var items []models.EquipmentItem
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("name ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_equipment", "Erro ao listar equipamentos.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) CreateEquipment(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	item := models.EquipmentItem{
		ShopID:          shopID,
		Name:            req.Name,
		Category:        req.Category,
		PurchaseDate:    req.PurchaseDate,
		NextMaintenance: req.NextMaintenance,
		Notes:           req.Notes,
	}
	if req.Condition != "" {
		item.Condition = req.Condition
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_equipment", "Erro ao cadastrar equipamento.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateEquipment(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var item models.EquipmentItem
	if err := h.db.Where("id = ? AND shop_id = ?", id, shopID).First(&item).Error; err != nil {
		httperr.NotFound(c, "equipment_not_found", "Equipamento não encontrado.")
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Condition != nil {
		item.Condition = *req.Condition
	}
	if req.PurchaseDate != nil {
		item.PurchaseDate = *req.PurchaseDate
	}
	if req.NextMaintenance != nil {
		item.NextMaintenance = *req.NextMaintenance
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_equipment", "Erro ao atualizar equipamento.")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) DeleteEquipment(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Where("shop_id = ?", shopID).Delete(&models.EquipmentItem{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_equipment", "Erro ao excluir equipamento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "equipment_not_found", "Equipamento não encontrado.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// INSUMOS
// ======================================================

type CreateSupplyRequest struct {
	Name             string `json:"name" binding:"required"`
	Unit             string `json:"unit"`
	Quantity         int    `json:"quantity"`
	ReorderThreshold int    `json:"reorder_threshold"`
	LastRestocked    string `json:"last_restocked"`
}

type UpdateSupplyRequest struct {
	Name             *string `json:"name,omitempty"`
	Unit             *string `json:"unit,omitempty"`
	Quantity         *int    `json:"quantity,omitempty"`
	ReorderThreshold *int    `json:"reorder_threshold,omitempty"`
	LastRestocked    *string `json:"last_restocked,omitempty"`
}

func (h *InventoryHandler) ListSupplies(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var items []models.SupplyItem
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("name ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_supplies", "Erro ao listar insumos.")
		return
	}

	c.JSON(http.StatusOK, items)
}

// Itens no nível de reposição ou abaixo.
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var items []models.SupplyItem
	if err := h.db.
		Where("shop_id = ? AND quantity <= reorder_threshold", shopID).
		Order("quantity ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_supplies", "Erro ao listar insumos.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) CreateSupply(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	item := models.SupplyItem{
		ShopID:           shopID,
		Name:             req.Name,
		Unit:             req.Unit,
		Quantity:         req.Quantity,
		ReorderThreshold: req.ReorderThreshold,
		LastRestocked:    req.LastRestocked,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_supply", "Erro ao cadastrar insumo.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateSupply(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var item models.SupplyItem
	if err := h.db.Where("id = ? AND shop_id = ?", id, shopID).First(&item).Error; err != nil {
		httperr.NotFound(c, "supply_not_found", "Insumo não encontrado.")
		return
	}

	var req UpdateSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ReorderThreshold != nil {
		item.ReorderThreshold = *req.ReorderThreshold
	}
	if req.LastRestocked != nil {
		item.LastRestocked = *req.LastRestocked
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_supply", "Erro ao atualizar insumo.")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) DeleteSupply(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Where("shop_id = ?", shopID).Delete(&models.SupplyItem{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_supply", "Erro ao excluir insumo.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "supply_not_found", "Insumo não encontrado.")
		return
	}

	c.Status(http.StatusNoContent)
}
