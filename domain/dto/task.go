package dto

import (
	"time"
)

// TaskForm คือ field จากฟอร์ม create/edit
type TaskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=10000"`
}

type TaskResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	UserID      uint          `json:"userId"`
	User        *UserResponse `json:"user,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
