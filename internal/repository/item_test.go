package repository

import (
	"testing"
	"time"

	"crm-dashboard-backend/internal/database/models"
	"crm-dashboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ItemRepositoryTestSuite tests the ItemRepository
type ItemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ItemRepository
	factories     *testutils.FactorySet

	org   *models.Organization
	owner *models.User
	agent *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *ItemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewItemRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ItemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a fresh tenant before each test
func (suite *ItemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org, suite.owner, suite.agent = suite.factories.CreateTenant()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.owner).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.agent).Error)
}

// TearDownTest runs after each test
func (suite *ItemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOtherTenant seeds a second organization with one user and one item
func (suite *ItemRepositoryTestSuite) createOtherTenant() (*models.Organization, *models.Item) {
	otherOrg := suite.factories.Organization.WithName("Other Organization")
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)
	otherUser := suite.factories.User.WithOrganization(otherOrg.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherUser).Error)
	otherItem := suite.factories.Item.Create(otherOrg.ID, otherUser.ID)
	suite.NoError(suite.repo.Create(otherItem))
	return otherOrg, otherItem
}

// TestCreate tests creating a new item
func (suite *ItemRepositoryTestSuite) TestCreate() {
	item := suite.factories.Item.Create(suite.org.ID, suite.agent.ID)

	err := suite.repo.Create(item)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, item.ID)
	suite.NotZero(item.CreatedAt)
}

// TestGetByID tests retrieving an item with its creator preloaded
func (suite *ItemRepositoryTestSuite) TestGetByID() {
	item := suite.factories.Item.Create(suite.org.ID, suite.agent.ID)
	suite.NoError(suite.repo.Create(item))

	retrieved, err := suite.repo.GetByID(suite.org.ID, item.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(item.ID, retrieved.ID)
	suite.NotNil(retrieved.CreatedBy)
	suite.Equal(suite.agent.ID, retrieved.CreatedBy.ID)
}

// TestGetByIDOtherTenant tests that items of another organization surface as not found
func (suite *ItemRepositoryTestSuite) TestGetByIDOtherTenant() {
	_, otherItem := suite.createOtherTenant()

	retrieved, err := suite.repo.GetByID(suite.org.ID, otherItem.ID)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestListPagination tests page slicing and newest-first ordering
func (suite *ItemRepositoryTestSuite) TestListPagination() {
	now := time.Now()
	names := []string{"+1 555 0101", "+1 555 0102", "+1 555 0103"}
	for i, name := range names {
		item := suite.factories.Item.WithCreatedAt(suite.org.ID, suite.agent.ID, now.Add(-time.Duration(i)*time.Hour))
		item.Name = name
		suite.NoError(suite.repo.Create(item))
	}

	page1, total, err := suite.repo.List(&suite.org.ID, ItemFilters{}, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page1, 2)
	suite.Equal("+1 555 0101", page1[0].Name)
	suite.Equal("+1 555 0102", page1[1].Name)

	page2, total, err := suite.repo.List(&suite.org.ID, ItemFilters{}, 2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page2, 1)
	suite.Equal("+1 555 0103", page2[0].Name)
}

// TestListSearch tests the case-insensitive search over name and description
func (suite *ItemRepositoryTestSuite) TestListSearch() {
	byName := suite.factories.Item.Create(suite.org.ID, suite.agent.ID)
	byName.Name = "Support Callback"
	suite.NoError(suite.repo.Create(byName))

	byDescription := suite.factories.Item.Create(suite.org.ID, suite.agent.ID)
	byDescription.Name = "+1 555 0200"
	byDescription.Description = "callback requested"
	suite.NoError(suite.repo.Create(byDescription))

	unrelated := suite.factories.Item.Create(suite.org.ID, suite.agent.ID)
	unrelated.Name = "+1 555 0300"
	unrelated.Description = ""
	suite.NoError(suite.repo.Create(unrelated))

	items, total, err := suite.repo.List(&suite.org.ID, ItemFilters{Search: "CALLBACK"}, 25, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(items, 2)
}

// TestListStatusAndCategoryFilters tests IN-clause filtering
func (suite *ItemRepositoryTestSuite) TestListStatusAndCategoryFilters() {
	active := suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusActive)
	suite.NoError(suite.repo.Create(active))
	completed := suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusInactive)
	suite.NoError(suite.repo.Create(completed))
	sales := suite.factories.Item.WithCategory(suite.org.ID, suite.agent.ID, "sales")
	suite.NoError(suite.repo.Create(sales))

	byStatus, total, err := suite.repo.List(&suite.org.ID, ItemFilters{Statuses: []string{"inactive"}}, 25, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(completed.ID, byStatus[0].ID)

	byCategory, total, err := suite.repo.List(&suite.org.ID, ItemFilters{Categories: []string{"sales"}}, 25, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(sales.ID, byCategory[0].ID)
}

// TestListAgentFilter tests restricting to one creator
func (suite *ItemRepositoryTestSuite) TestListAgentFilter() {
	suite.NoError(suite.repo.Create(suite.factories.Item.Create(suite.org.ID, suite.agent.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Item.Create(suite.org.ID, suite.owner.ID)))

	items, total, err := suite.repo.List(&suite.org.ID, ItemFilters{AgentID: &suite.agent.ID}, 25, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(suite.agent.ID, items[0].CreatedByID)
}

// TestTenantIsolation tests that listing never leaks items across organizations
func (suite *ItemRepositoryTestSuite) TestTenantIsolation() {
	mine := suite.factories.Item.Create(suite.org.ID, suite.agent.ID)
	suite.NoError(suite.repo.Create(mine))
	otherOrg, _ := suite.createOtherTenant()

	items, total, err := suite.repo.List(&suite.org.ID, ItemFilters{}, 25, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(mine.ID, items[0].ID)

	otherItems, otherTotal, err := suite.repo.List(&otherOrg.ID, ItemFilters{}, 25, 0)
	suite.NoError(err)
	suite.Equal(int64(1), otherTotal)
	suite.NotEqual(mine.ID, otherItems[0].ID)
}

// TestNilOrganization tests that a nil organization yields empty results
func (suite *ItemRepositoryTestSuite) TestNilOrganization() {
	suite.NoError(suite.repo.Create(suite.factories.Item.Create(suite.org.ID, suite.agent.ID)))

	items, total, err := suite.repo.List(nil, ItemFilters{}, 25, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(items)

	count, err := suite.repo.Count(nil)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	recent, err := suite.repo.Recent(nil, 10)
	suite.NoError(err)
	suite.Empty(recent)
}

// TestStatusSummary tests outcome grouping within a time window
func (suite *ItemRepositoryTestSuite) TestStatusSummary() {
	suite.NoError(suite.repo.Create(suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusActive)))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusInactive)))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusInactive)))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusArchived)))

	// Outside the window
	old := suite.factories.Item.WithCreatedAt(suite.org.ID, suite.agent.ID, time.Now().AddDate(0, 0, -10))
	suite.NoError(suite.repo.Create(old))

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	summary, err := suite.repo.StatusSummary(&suite.org.ID, start, end)

	suite.NoError(err)
	suite.Equal(int64(4), summary.Total)
	suite.Equal(int64(2), summary.Completed)
	suite.Equal(int64(1), summary.Failed)
	suite.Equal(int64(1), summary.Active)
}

// TestDailyCounts tests calendar-day bucketing
func (suite *ItemRepositoryTestSuite) TestDailyCounts() {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	suite.NoError(suite.repo.Create(suite.factories.Item.WithCreatedAt(suite.org.ID, suite.agent.ID, now)))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithCreatedAt(suite.org.ID, suite.agent.ID, now)))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithCreatedAt(suite.org.ID, suite.agent.ID, yesterday)))

	counts, err := suite.repo.DailyCounts(&suite.org.ID, now.AddDate(0, 0, -2), now.Add(time.Hour))

	suite.NoError(err)
	suite.Len(counts, 2)
	suite.Equal(int64(2), counts[now.Format("2006-01-02")])
	suite.Equal(int64(1), counts[yesterday.Format("2006-01-02")])
}

// TestHourlyCounts tests hour-of-day bucketing
func (suite *ItemRepositoryTestSuite) TestHourlyCounts() {
	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	at9 := day.Add(9 * time.Hour)
	at14 := day.Add(14 * time.Hour)

	suite.NoError(suite.repo.Create(suite.factories.Item.WithCreatedAt(suite.org.ID, suite.agent.ID, at9)))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithCreatedAt(suite.org.ID, suite.agent.ID, at9.Add(10*time.Minute))))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithCreatedAt(suite.org.ID, suite.agent.ID, at14)))

	counts, err := suite.repo.HourlyCounts(&suite.org.ID, day, day.AddDate(0, 0, 1))

	suite.NoError(err)
	suite.Equal(int64(2), counts[9])
	suite.Equal(int64(1), counts[14])
}

// TestAggregations tests the reporting rollups over a filtered set
func (suite *ItemRepositoryTestSuite) TestAggregations() {
	completed := suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusInactive)
	suite.NoError(suite.repo.Create(completed))
	sales := suite.factories.Item.WithCategory(suite.org.ID, suite.owner.ID, "sales")
	suite.NoError(suite.repo.Create(sales))

	agg, err := suite.repo.Aggregations(&suite.org.ID, ItemFilters{})

	suite.NoError(err)
	suite.Equal(int64(1), agg.ByStatus["inactive"])
	suite.Equal(int64(1), agg.ByStatus["active"])
	suite.Equal(int64(1), agg.ByCategory["sales"])
	suite.Equal(int64(1), agg.ByCategory["communication"])
	suite.Equal(int64(1), agg.ByAgent[suite.agent.FullName()])
	suite.Equal(int64(1), agg.ByAgent[suite.owner.FullName()])
	suite.Equal(EstimateTotalDuration(2), agg.TotalDuration)
}

// TestDelete tests that deletion is organization-scoped
func (suite *ItemRepositoryTestSuite) TestDelete() {
	item := suite.factories.Item.Create(suite.org.ID, suite.agent.ID)
	suite.NoError(suite.repo.Create(item))
	otherOrg, otherItem := suite.createOtherTenant()

	// Wrong tenant deletes nothing
	suite.NoError(suite.repo.Delete(suite.org.ID, otherItem.ID))
	stillThere, err := suite.repo.GetByID(otherOrg.ID, otherItem.ID)
	suite.NoError(err)
	suite.NotNil(stillThere)

	suite.NoError(suite.repo.Delete(suite.org.ID, item.ID))
	_, err = suite.repo.GetByID(suite.org.ID, item.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCountByStatus tests counting items in one status
func (suite *ItemRepositoryTestSuite) TestCountByStatus() {
	suite.NoError(suite.repo.Create(suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusActive)))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusActive)))
	suite.NoError(suite.repo.Create(suite.factories.Item.WithStatus(suite.org.ID, suite.agent.ID, models.ItemStatusArchived)))

	count, err := suite.repo.CountByStatus(&suite.org.ID, models.ItemStatusActive)

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestItemRepositoryTestSuite runs the test suite
func TestItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryTestSuite))
}
