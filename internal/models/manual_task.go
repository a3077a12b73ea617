package models

import "time"

// Tarefa do manual de operações (abertura, fechamento, limpeza...)
type ManualTask struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Section     string `gorm:"size:50;not null" json:"section"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	SortOrder   int    `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Conclusão de uma tarefa num dia específico
type ManualTaskCompletion struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TaskID uint `gorm:"index" json:"task_id"`

	Date        string `gorm:"size:10;index" json:"date"`
	CompletedBy *uint  `json:"completed_by"`

	CreatedAt time.Time `json:"created_at"`
}
