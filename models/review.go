package models

import "time"

// Review is a customer rating. Immutable once created.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null"`
	User         User      `json:"-" gorm:"foreignKey:UserID"`
	CustomerName string    `json:"customer_name" gorm:"not null"`
	Rating       int       `json:"rating" gorm:"not null"` // 1 to 5
	Comment      string    `json:"comment" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
