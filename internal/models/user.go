package models

import "time"

// User represents a registered shopper.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	FirstName string    `json:"first_name" gorm:"type:varchar(100)" validate:"required,max=100"`
	LastName  string    `json:"last_name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	CreatedAt time.Time `json:"created_at"`
}
