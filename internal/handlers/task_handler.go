package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberops/internal/httperr"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/models"
)

// TaskHandler cuida do manual de operações: tarefas por seção
// (abertura, fechamento, limpeza...) e o checklist diário.
type TaskHandler struct {
	db *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{db: db}
}

type CreateTaskRequest struct {
	Section     string `json:"section" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateTaskRequest struct {
	Section     *string `json:"section,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

type taskWithCompletion struct {
	models.ManualTask
	Completed   bool  `json:"completed"`
	CompletedBy *uint `json:"completed_by,omitempty"`
}

// List devolve as tarefas da loja com o estado de conclusão para a
// data pedida (?date=YYYY-MM-DD; default = hoje no fuso da loja).
func (h *TaskHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	date := c.Query("date")
	if date == "" {
		shop, err := shopFromContext(c, h.db)
		if err != nil {
			httperr.Internal(c, "failed_to_load_shop", "Erro ao carregar a barbearia.")
			return
		}
		date = nowInShop(shop).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida (YYYY-MM-DD).")
		return
	}

	var tasks []models.ManualTask
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("section ASC, sort_order ASC, id ASC").
		Find(&tasks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_tasks", "Erro ao listar tarefas.")
		return
	}

	taskIDs := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}

	done := map[uint]*uint{}
	if len(taskIDs) > 0 {
		var completions []models.ManualTaskCompletion
		if err := h.db.
			Where("task_id IN ? AND date = ?", taskIDs, date).
			Find(&completions).Error; err != nil {

			httperr.Internal(c, "failed_to_list_tasks", "Erro ao listar tarefas.")
			return
		}
		for _, comp := range completions {
			done[comp.TaskID] = comp.CompletedBy
		}
	}

	out := make([]taskWithCompletion, 0, len(tasks))
	for _, t := range tasks {
		by, completed := done[t.ID]
		out = append(out, taskWithCompletion{
			ManualTask:  t,
			Completed:   completed,
			CompletedBy: by,
		})
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "tasks": out})
}

func (h *TaskHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	task := models.ManualTask{
		ShopID:      shopID,
		Section:     req.Section,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}

	if err := h.db.Create(&task).Error; err != nil {
		httperr.Internal(c, "failed_to_create_task", "Erro ao criar tarefa.")
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var task models.ManualTask
	if err := h.db.Where("id = ? AND shop_id = ?", id, shopID).First(&task).Error; err != nil {
		httperr.NotFound(c, "task_not_found", "Tarefa não encontrada.")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Section != nil {
		task.Section = *req.Section
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.SortOrder != nil {
		task.SortOrder = *req.SortOrder
	}

	if err := h.db.Save(&task).Error; err != nil {
		httperr.Internal(c, "failed_to_update_task", "Erro ao atualizar tarefa.")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Where("shop_id = ?", shopID).Delete(&models.ManualTask{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_task", "Erro ao excluir tarefa.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "task_not_found", "Tarefa não encontrada.")
		return
	}

	// Limpa o histórico de conclusões órfãs.
	h.db.Where("task_id = ?", id).Delete(&models.ManualTaskCompletion{})

	c.Status(http.StatusNoContent)
}

type toggleCompletionRequest struct {
	Date      string `json:"date" binding:"required"`
	Completed bool   `json:"completed"`
}

// ToggleCompletion marca ou desmarca a tarefa na data informada.
func (h *TaskHandler) ToggleCompletion(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var task models.ManualTask
	if err := h.db.Where("id = ? AND shop_id = ?", id, shopID).First(&task).Error; err != nil {
		httperr.NotFound(c, "task_not_found", "Tarefa não encontrada.")
		return
	}

	var req toggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida (YYYY-MM-DD).")
		return
	}

	if !req.Completed {
		h.db.Where("task_id = ? AND date = ?", task.ID, req.Date).
			Delete(&models.ManualTaskCompletion{})

		c.JSON(http.StatusOK, gin.H{"task_id": task.ID, "date": req.Date, "completed": false})
		return
	}

	var existing models.ManualTaskCompletion
	err := h.db.Where("task_id = ? AND date = ?", task.ID, req.Date).First(&existing).Error
	if err == nil {
		// Já marcada: idempotente.
		c.JSON(http.StatusOK, gin.H{"task_id": task.ID, "date": req.Date, "completed": true})
		return
	}

	completion := models.ManualTaskCompletion{
		TaskID:      task.ID,
		Date:        req.Date,
		CompletedBy: &userID,
	}
	if err := h.db.Create(&completion).Error; err != nil {
		httperr.Internal(c, "failed_to_update_task", "Erro ao atualizar tarefa.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"task_id": task.ID, "date": req.Date, "completed": true})
}
