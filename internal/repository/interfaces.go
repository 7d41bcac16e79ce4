package repository

import (
	"time"

	"crm-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetByVoipappzID(voipappzOrgID string) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByVoipappzID(voipappzUserID string) (*models.User, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.User, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	CountActiveByOrganization(orgID uuid.UUID) (int64, error)
	CountAgentsWithItemsSince(orgID uuid.UUID, start, end time.Time) (int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ItemRepositoryInterface defines the interface for item repository operations
type ItemRepositoryInterface interface {
	Create(item *models.Item) error
	GetByID(orgID uuid.UUID, id uuid.UUID) (*models.Item, error)
	Update(item *models.Item) error
	Delete(orgID uuid.UUID, id uuid.UUID) error
	List(orgID *uuid.UUID, f ItemFilters, limit, offset int) ([]models.Item, int64, error)
	Count(orgID *uuid.UUID) (int64, error)
	CountByStatus(orgID *uuid.UUID, status models.ItemStatus) (int64, error)
	Recent(orgID *uuid.UUID, limit int) ([]models.Item, error)
	StatusSummary(orgID *uuid.UUID, start, end time.Time) (*StatusSummary, error)
	DailyCounts(orgID *uuid.UUID, start, end time.Time) (map[string]int64, error)
	DailyStatusCounts(orgID *uuid.UUID, start, end time.Time) ([]DailyStatusCount, error)
	HourlyCounts(orgID *uuid.UUID, start, end time.Time) (map[int]int64, error)
	Aggregations(orgID *uuid.UUID, f ItemFilters) (*ItemAggregations, error)
}

// Interface conformance checks
var (
	_ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)
	_ UserRepositoryInterface         = (*UserRepository)(nil)
	_ ItemRepositoryInterface         = (*ItemRepository)(nil)
)

// Repositories bundles all repositories over one database handle
type Repositories struct {
	Organizations *OrganizationRepository
	Users         *UserRepository
	Items         *ItemRepository
}

// New creates all repositories
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Organizations: NewOrganizationRepository(db),
		Users:         NewUserRepository(db),
		Items:         NewItemRepository(db),
	}
}
