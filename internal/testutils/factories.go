package testutils

import (
	"time"

	"crm-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Test Organization",
		Slug:   "test-organization-" + id.String()[:8],
		Plan:   models.PlanFree,
		Active: true,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.Slug = models.SlugFromName(name) + "-" + org.ID.String()[:8]
	return org
}

// WithPlan sets a custom plan for the organization
func (f *OrganizationFactory) WithPlan(plan models.OrganizationPlan) *models.Organization {
	org := f.Create()
	org.Plan = plan
	return org
}

// WithVoipappzID sets the external platform organization ID
func (f *OrganizationFactory) WithVoipappzID(voipappzOrgID string) *models.Organization {
	org := f.Create()
	org.VoipappzOrganizationID = &voipappzOrgID
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Email and platform ID
// carry a UUID fragment so repeated calls never collide on unique indexes.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:          "user-" + suffix + "@test.com",
		FirstName:      "John",
		LastName:       "Doe",
		Role:           models.RoleAgent,
		Active:         true,
		VoipappzUserID: "vpz_user_" + suffix,
		Permissions:    models.StringList{"calls:read", "dashboard:read"},
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithPermissions sets custom permissions for the user
func (f *UserFactory) WithPermissions(permissions ...string) *models.User {
	user := f.Create()
	user.Permissions = models.StringList(permissions)
	return user
}

// ItemFactory provides methods to create test Item data
type ItemFactory struct{}

// NewItemFactory creates a new ItemFactory
func NewItemFactory() *ItemFactory {
	return &ItemFactory{}
}

// Create creates a test Item with default values
func (f *ItemFactory) Create(orgID, createdByID uuid.UUID) *models.Item {
	return &models.Item{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		CreatedByID:    createdByID,
		Name:           "+1 555 0100",
		Description:    "02:15",
		Category:       "communication",
		Status:         models.ItemStatusActive,
	}
}

// WithStatus sets a custom status for the item
func (f *ItemFactory) WithStatus(orgID, createdByID uuid.UUID, status models.ItemStatus) *models.Item {
	item := f.Create(orgID, createdByID)
	item.Status = status
	return item
}

// WithCategory sets a custom category for the item
func (f *ItemFactory) WithCategory(orgID, createdByID uuid.UUID, category string) *models.Item {
	item := f.Create(orgID, createdByID)
	item.Category = category
	return item
}

// WithCreatedAt backdates the item; GORM keeps a non-zero CreatedAt on insert
func (f *ItemFactory) WithCreatedAt(orgID, createdByID uuid.UUID, createdAt time.Time) *models.Item {
	item := f.Create(orgID, createdByID)
	item.CreatedAt = createdAt
	return item
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Item         *ItemFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Item:         NewItemFactory(),
	}
}

// CreateTenant creates an organization with an owner and an agent, the
// minimal hierarchy most repository tests need.
func (fs *FactorySet) CreateTenant() (*models.Organization, *models.User, *models.User) {
	org := fs.Organization.Create()
	owner := fs.User.WithOrganization(org.ID)
	owner.Role = models.RoleOwner
	agent := fs.User.WithOrganization(org.ID)
	return org, owner, agent
}
