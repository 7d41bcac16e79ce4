package repository

import (
	"time"

	"crm-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Organization").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email (stored lowercase)
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByVoipappzID retrieves a user by the external platform user ID
func (r *UserRepository) GetByVoipappzID(voipappzUserID string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Organization").First(&user, "voipappz_user_id = ?", voipappzUserID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByOrganizationID retrieves active users of an organization
func (r *UserRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("organization_id = ?", orgID).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountByOrganization counts all users of an organization
func (r *UserRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// CountActiveByOrganization counts active users of an organization
func (r *UserRepository) CountActiveByOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("organization_id = ? AND active = ?", orgID, true).
		Count(&count).Error
	return count, err
}

// CountAgentsWithItemsSince counts distinct users of the organization that
// created at least one item in the given window
func (r *UserRepository) CountAgentsWithItemsSince(orgID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Joins("JOIN items ON items.created_by_id = users.id").
		Where("users.organization_id = ?", orgID).
		Where("items.created_at >= ? AND items.created_at <= ?", start, end).
		Distinct("users.id").
		Count(&count).Error
	return count, err
}

// Update persists user changes
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
