package repositories

import (
	"errors"
	"fmt"

	"clothingshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUserID returns the user's cart lines in insertion order.
func (r *GORMCartRepository) GetByUserID(userID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return lines, nil
}

// GetLine returns the user's line for one configuration, (nil, nil) if absent.
func (r *GORMCartRepository) GetLine(userID, productID, size string) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.First(&line, "user_id = ? AND product_id = ? AND size = ?", userID, productID, size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart line: %w", err)
	}
	return &line, nil
}

// Create adds a new cart line.
func (r *GORMCartRepository) Create(line *models.CartLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	if err := r.db.Create(line).Error; err != nil {
		return fmt.Errorf("failed to create cart line: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (r *GORMCartRepository) UpdateQuantity(id string, quantity int) error {
	res := r.db.Model(&models.CartLine{}).Where("id = ?", id).UpdateColumn("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart line %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line with ID %s not found", id)
	}
	return nil
}

// Delete removes one line, scoped to the owning user.
func (r *GORMCartRepository) Delete(id, userID string) error {
	res := r.db.Delete(&models.CartLine{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart line %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line %s not found for user %s", id, userID)
	}
	return nil
}

// Clear removes every line of the user.
func (r *GORMCartRepository) Clear(userID string) (int64, error) {
	res := r.db.Delete(&models.CartLine{}, "user_id = ?", userID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear cart for user %s: %w", userID, res.Error)
	}
	return res.RowsAffected, nil
}
