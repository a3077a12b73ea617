package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/models"
)

type ExpenseHandler struct {
	db *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

// --------- Requests ---------

type CreateExpenseRequest struct {
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
}

type UpdateExpenseRequest struct {
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
}

// ======================================================
// LIST (por mês) + SUMMARY
// ======================================================

func (h *ExpenseHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	q := h.db.Where("shop_id = ?", shopID)

	// ?month=2026-03 restringe a um mês
	if month := c.Query("month"); month != "" {
		q = q.Where("date LIKE ?", month+"%")
	}

	var expenses []models.Expense
	if err := q.
		Order("date DESC").
		Find(&expenses).Error; err != nil {

		httperr.Internal(c, "failed_to_list_expenses", "Erro ao listar despesas.")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

type expenseSummaryRow struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

func (h *ExpenseHandler) Summary(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	month := c.Query("month")
	if month == "" {
		httperr.BadRequest(c, "missing_month", "Mês obrigatório (YYYY-MM).")
		return
	}

	var rows []expenseSummaryRow
	if err := h.db.
		Model(&models.Expense{}).
		Select("category, SUM(amount) AS total").
		Where("shop_id = ? AND date LIKE ?", shopID, month+"%").
		Group("category").
		Order("total DESC").
		Scan(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_summarize_expenses", "Erro ao somar despesas.")
		return
	}

	var total float64
	for _, r := range rows {
		total += r.Total
	}

	c.JSON(http.StatusOK, gin.H{
		"month":      month,
		"total":      total,
		"categories": rows,
	})
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ExpenseHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	expense := models.Expense{
		ShopID:      shopID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}

	if err := h.db.Create(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_create_expense", "Erro ao criar despesa.")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var expense models.Expense
	if err := h.db.Where("id = ? AND shop_id = ?", id, shopID).First(&expense).Error; err != nil {
		httperr.NotFound(c, "expense_not_found", "Despesa não encontrada.")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}

	if err := h.db.Save(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_update_expense", "Erro ao atualizar despesa.")
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Where("shop_id = ?", shopID).Delete(&models.Expense{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_expense", "Erro ao excluir despesa.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "expense_not_found", "Despesa não encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}
