package service

import (
	"context"

	"crm-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ItemServiceInterface defines the interface for item operations
type ItemServiceInterface interface {
	List(org *models.Organization, req *ListItemsRequest) (*ListItemsResponse, error)
	Count(org *models.Organization) (int64, error)
	GetByID(org *models.Organization, id uuid.UUID) (*ItemResponse, error)
	Create(org *models.Organization, user *models.User, req *CreateItemRequest) (*ItemResponse, error)
	Update(org *models.Organization, id uuid.UUID, req *UpdateItemRequest) (*ItemResponse, error)
	Delete(org *models.Organization, id uuid.UUID) error
}

// UserServiceInterface defines the interface for user operations
type UserServiceInterface interface {
	ListByOrganization(org *models.Organization) ([]UserResponse, error)
	GetByID(org *models.Organization, id uuid.UUID) (*UserResponse, error)
	ChangeRole(org *models.Organization, current *models.User, id uuid.UUID, req *ChangeRoleRequest) (*UserResponse, error)
	ToggleActive(org *models.Organization, current *models.User, id uuid.UUID) (*UserResponse, error)
}

// OrganizationServiceInterface defines the interface for organization operations
type OrganizationServiceInterface interface {
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	Create(current *models.User, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(current *models.User, id uuid.UUID) error
	Stats(id uuid.UUID) (*OrganizationStatsResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard aggregation
type DashboardServiceInterface interface {
	Stats(ctx context.Context, org *models.Organization, user *models.User, token string) (*DashboardStats, error)
	Snapshot(org *models.Organization) (*LiveSnapshot, error)
}

// Interface conformance checks
var (
	_ ItemServiceInterface         = (*ItemService)(nil)
	_ UserServiceInterface         = (*UserService)(nil)
	_ OrganizationServiceInterface = (*OrganizationService)(nil)
	_ DashboardServiceInterface    = (*DashboardService)(nil)
)
