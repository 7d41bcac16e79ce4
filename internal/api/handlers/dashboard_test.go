package handlers

import (
	"net/http"
	"testing"

	"crm-dashboard-backend/internal/database/models"
	apperrors "crm-dashboard-backend/internal/errors"
	"crm-dashboard-backend/internal/mocks"
	"crm-dashboard-backend/internal/service"
	"crm-dashboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockDashboardService *mocks.MockDashboardServiceInterface
	handler              *DashboardHandler
	httpSuite            *testutils.HTTPTestSuite
	org                  *models.Organization
	user                 *models.User
}

// SetupTest sets up the test suite
func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDashboardService = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.handler = NewDashboardHandler(suite.mockDashboardService, nil)

	suite.org = &models.Organization{Name: "Acme Telecom", Slug: "acme-telecom"}
	suite.org.ID = uuid.New()
	suite.user = &models.User{Email: "agent@acme.example", Role: models.RoleAgent}
	suite.user.ID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	api.Use(authenticatedContext(suite.org, suite.user, "platform-token"))
	api.GET("/dashboard", suite.handler.GetStats)
}

// TearDownTest cleans up after each test
func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetStats tests the composed dashboard snapshot
func (suite *DashboardHandlerTestSuite) TestGetStats() {
	expected := &service.DashboardStats{
		TodaysSummary: service.TodaysSummary{
			TotalCalls:    6,
			AnsweredCalls: 3,
			MissedCalls:   2,
			ActiveCalls:   1,
			AnswerRate:    50.0,
		},
		LiveMetrics: service.LiveMetrics{
			ActiveCalls:     1,
			AgentsOnline:    2,
			AverageDuration: "3:00",
			CallsPerHour:    0.5,
		},
		VoipappzData: service.PlatformData{
			PlatformConnected: true,
			IntegrationStatus: "connected",
		},
	}

	suite.mockDashboardService.EXPECT().
		Stats(gomock.Any(), suite.org, suite.user, "platform-token").
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/dashboard", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.DashboardStats
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(6), response.TodaysSummary.TotalCalls)
	assert.Equal(suite.T(), 50.0, response.TodaysSummary.AnswerRate)
	assert.True(suite.T(), response.VoipappzData.PlatformConnected)
	assert.Equal(suite.T(), "connected", response.VoipappzData.IntegrationStatus)
}

// TestGetStatsOrganizationRequired tests the missing-tenant rejection
func (suite *DashboardHandlerTestSuite) TestGetStatsOrganizationRequired() {
	suite.mockDashboardService.EXPECT().
		Stats(gomock.Any(), suite.org, suite.user, "platform-token").
		Return(nil, apperrors.ErrOrganizationRequired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/dashboard", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "organization required")
}

// TestGetStatsInternalError tests the fallback error mapping
func (suite *DashboardHandlerTestSuite) TestGetStatsInternalError() {
	suite.mockDashboardService.EXPECT().
		Stats(gomock.Any(), suite.org, suite.user, "platform-token").
		Return(nil, assert.AnError).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/dashboard", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "internal server error")
}

// TestDashboardHandlerTestSuite runs the test suite
func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
