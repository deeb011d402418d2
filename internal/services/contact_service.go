package services

import (
	"clothingshop/internal/models"
	"clothingshop/internal/repositories"
)

// ContactService stores contact form submissions.
type ContactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo repositories.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// SaveMessage persists a contact message.
func (s *ContactService) SaveMessage(message *models.ContactMessage) error {
	return s.contactRepo.Create(message)
}
