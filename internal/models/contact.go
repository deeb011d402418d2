package models

import "time"

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Message   string    `json:"message" gorm:"type:text" validate:"required,min=1,max=2000"`
	CreatedAt time.Time `json:"created_at"`
}
