package models

import (
	"time"
)

// User คือบัญชีที่ login ด้วย email + password
// email ไม่ unique (ไม่มีการตรวจซ้ำตอน register)
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:255"`
	Email     string `gorm:"size:255;index"`
	Password  string `gorm:"size:255"` // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
