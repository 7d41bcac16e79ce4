package service

import (
	"errors"
	"fmt"
	"time"

	"crm-dashboard-backend/internal/database/models"
	apperrors "crm-dashboard-backend/internal/errors"
	"crm-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for organization members. It never
// creates users; that stays with the identity sync.
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// ChangeRoleRequest represents the request to change a user's role
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required" validate:"required"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	Permissions  []string   `json:"permissions"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ListByOrganization returns the organization's members
func (s *UserService) ListByOrganization(org *models.Organization) ([]UserResponse, error) {
	if org == nil {
		return []UserResponse{}, nil
	}
	users, err := s.repo.GetByOrganizationID(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return responses, nil
}

// GetByID retrieves one member of the organization
func (s *UserService) GetByID(org *models.Organization, id uuid.UUID) (*UserResponse, error) {
	user, err := s.memberOf(org, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangeRole assigns a new role to a member. The current user must be able
// to manage the target; nobody changes their own role.
func (s *UserService) ChangeRole(org *models.Organization, current *models.User, id uuid.UUID, req *ChangeRoleRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("role", err.Error())
	}
	role := models.UserRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}

	user, err := s.memberOf(org, id)
	if err != nil {
		return nil, err
	}
	if !current.CanManageUser(user) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user.Role = role
	if err := s.repo.Update(user); err != nil {
		return nil, apperrors.NewValidationError("user", err.Error())
	}
	return toUserResponse(user), nil
}

// ToggleActive flips a member's active flag
func (s *UserService) ToggleActive(org *models.Organization, current *models.User, id uuid.UUID) (*UserResponse, error) {
	user, err := s.memberOf(org, id)
	if err != nil {
		return nil, err
	}
	if !current.CanManageUser(user) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user.Active = !user.Active
	if err := s.repo.Update(user); err != nil {
		return nil, apperrors.NewValidationError("user", err.Error())
	}
	return toUserResponse(user), nil
}

// memberOf loads a user and verifies organization membership; users of
// other tenants surface as not found
func (s *UserService) memberOf(org *models.Organization, id uuid.UUID) (*models.User, error) {
	if org == nil {
		return nil, apperrors.ErrUserNotFound
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.OrganizationID == nil || *user.OrganizationID != org.ID {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         string(user.Role),
		Active:       user.Active,
		Permissions:  []string(user.Permissions),
		LastSyncedAt: user.LastSyncedAt(),
		CreatedAt:    user.CreatedAt,
	}
}
