package repositories

import (
	"clothingshop/internal/models"
)

// ContactRepository defines the interface for contact message data access.
type ContactRepository interface {
	Create(message *models.ContactMessage) error
}
