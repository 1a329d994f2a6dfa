package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
}
