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

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	orgRepo  repository.OrganizationRepositoryInterface
	userRepo repository.UserRepositoryInterface
	itemRepo repository.ItemRepositoryInterface
	validate *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(orgRepo repository.OrganizationRepositoryInterface, userRepo repository.UserRepositoryInterface, itemRepo repository.ItemRepositoryInterface, validate *validator.Validate) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		validate: validate,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name     string                 `json:"name" validate:"required,min=1,max=100"`
	Plan     string                 `json:"plan,omitempty"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name     *string                `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Slug      string                 `json:"slug"`
	Plan      string                 `json:"plan"`
	Active    bool                   `json:"active"`
	Settings  map[string]interface{} `json:"settings,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// OrganizationStatsResponse summarizes an organization's recent activity
type OrganizationStatsResponse struct {
	TotalUsers            int64  `json:"total_users"`
	ActiveUsers           int64  `json:"active_users"`
	TotalItems            int64  `json:"total_items"`
	ItemsCreatedThisWeek  int64  `json:"items_created_this_week"`
	ItemsCreatedThisMonth int64  `json:"items_created_this_month"`
	Plan                  string `json:"plan"`
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return toOrganizationResponse(org), nil
}

// Create creates an organization; only owners may do this
func (s *OrganizationService) Create(current *models.User, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if !current.IsOwner() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("organization", err.Error())
	}

	plan := models.PlanFree
	if req.Plan != "" {
		plan = models.OrganizationPlan(req.Plan)
		if !plan.IsValid() {
			return nil, apperrors.NewValidationError("plan", fmt.Sprintf("unknown plan %q", req.Plan))
		}
	}

	org := &models.Organization{
		Name:     req.Name,
		Plan:     plan,
		Active:   true,
		Settings: models.JSONMap(req.Settings),
	}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, apperrors.NewValidationError("organization", err.Error())
	}
	return toOrganizationResponse(org), nil
}

// Update applies a partial update to the organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("organization", err.Error())
	}

	org, err := s.orgRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Settings != nil {
		org.Settings = models.JSONMap(req.Settings)
	}

	if err := s.orgRepo.Update(org); err != nil {
		return nil, apperrors.NewValidationError("organization", err.Error())
	}
	return toOrganizationResponse(org), nil
}

// Delete removes an organization and cascades to its users and items; only
// owners may do this
func (s *OrganizationService) Delete(current *models.User, id uuid.UUID) error {
	if !current.IsOwner() {
		return apperrors.ErrInsufficientPermissions
	}
	if _, err := s.orgRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}
	return s.orgRepo.Delete(id)
}

// Stats summarizes membership and recent item activity
func (s *OrganizationService) Stats(id uuid.UUID) (*OrganizationStatsResponse, error) {
	org, err := s.orgRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	totalUsers, err := s.userRepo.CountByOrganization(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	activeUsers, err := s.userRepo.CountActiveByOrganization(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	totalItems, err := s.itemRepo.Count(&org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	now := time.Now()
	weekStart, _, _ := ResolveDateRangePreset("this_week", now)
	monthStart, _, _ := ResolveDateRangePreset("this_month", now)

	weekSummary, err := s.itemRepo.StatusSummary(&org.ID, weekStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize weekly items: %w", err)
	}
	monthSummary, err := s.itemRepo.StatusSummary(&org.ID, monthStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize monthly items: %w", err)
	}

	return &OrganizationStatsResponse{
		TotalUsers:            totalUsers,
		ActiveUsers:           activeUsers,
		TotalItems:            totalItems,
		ItemsCreatedThisWeek:  weekSummary.Total,
		ItemsCreatedThisMonth: monthSummary.Total,
		Plan:                  string(org.Plan),
	}, nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Slug:      org.Slug,
		Plan:      string(org.Plan),
		Active:    org.Active,
		Settings:  map[string]interface{}(org.Settings),
		CreatedAt: org.CreatedAt,
	}
}
