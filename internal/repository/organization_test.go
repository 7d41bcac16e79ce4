package repository

import (
	"testing"

	"crm-dashboard-backend/internal/database/models"
	"crm-dashboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
	suite.NotEmpty(org.Slug)
}

// TestCreateGeneratesSlug tests slug generation from the name
func (suite *OrganizationRepositoryTestSuite) TestCreateGeneratesSlug() {
	org := suite.factories.Organization.Create()
	org.Name = "Acme Telecom Inc."
	org.Slug = ""

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.Equal("acme-telecom-inc", org.Slug)
}

// TestCreateSlugCollision tests that a taken slug gets a numeric suffix
func (suite *OrganizationRepositoryTestSuite) TestCreateSlugCollision() {
	first := suite.factories.Organization.Create()
	first.Name = "Acme"
	first.Slug = ""
	suite.NoError(suite.repo.Create(first))
	suite.Equal("acme", first.Slug)

	second := suite.factories.Organization.Create()
	second.Name = "Acme"
	second.Slug = ""
	suite.NoError(suite.repo.Create(second))
	suite.Equal("acme-1", second.Slug)
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal(org.Name, retrieved.Name)
	suite.Equal(org.Plan, retrieved.Plan)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(org)
}

// TestGetBySlug tests retrieving an organization by slug
func (suite *OrganizationRepositoryTestSuite) TestGetBySlug() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetBySlug(org.Slug)

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

// TestGetByVoipappzID tests retrieving an organization by platform ID
func (suite *OrganizationRepositoryTestSuite) TestGetByVoipappzID() {
	org := suite.factories.Organization.WithVoipappzID("org_456")
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByVoipappzID("org_456")

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)

	_, err = suite.repo.GetByVoipappzID("org_unknown")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdate tests updating organization fields
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	org.Name = "Renamed Organization"
	org.Plan = models.PlanPremium
	suite.NoError(suite.repo.Update(org))

	retrieved, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal("Renamed Organization", retrieved.Name)
	suite.Equal(models.PlanPremium, retrieved.Plan)
}

// TestDeleteCascades tests that users and items go with the organization
func (suite *OrganizationRepositoryTestSuite) TestDeleteCascades() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))
	user := suite.factories.User.WithOrganization(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	item := suite.factories.Item.Create(org.ID, user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(item).Error)

	suite.NoError(suite.repo.Delete(org.ID))

	_, err := suite.repo.GetByID(org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var itemCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Item{}).Where("organization_id = ?", org.ID).Count(&itemCount).Error)
	suite.Equal(int64(0), itemCount)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
