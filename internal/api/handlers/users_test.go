package handlers

import (
	"fmt"
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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
	org             *models.Organization
	currentUser     *models.User
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.mockUserService)

	suite.org = &models.Organization{Name: "Acme Telecom", Slug: "acme-telecom"}
	suite.org.ID = uuid.New()
	suite.currentUser = &models.User{Email: "owner@acme.example", Role: models.RoleOwner}
	suite.currentUser.ID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	api.Use(authenticatedContext(suite.org, suite.currentUser, "platform-token"))
	users := api.Group("/users")
	{
		users.GET("", suite.handler.ListUsers)
		users.GET("/:id", suite.handler.GetUser)
		users.PATCH("/:id/change_role", suite.handler.ChangeRole)
		users.PATCH("/:id/toggle_active", suite.handler.ToggleActive)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListUsers tests listing the organization's members
func (suite *UserHandlerTestSuite) TestListUsers() {
	expected := []service.UserResponse{
		{ID: uuid.New(), Email: "owner@acme.example", Role: "owner", Active: true},
		{ID: uuid.New(), Email: "agent@acme.example", Role: "agent", Active: true},
	}

	suite.mockUserService.EXPECT().
		ListByOrganization(suite.org).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/users", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Users []service.UserResponse `json:"users"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Users, 2)
	assert.Equal(suite.T(), "agent@acme.example", response.Users[1].Email)
}

// TestGetUser tests getting a member by ID
func (suite *UserHandlerTestSuite) TestGetUser() {
	userID := uuid.New()
	expected := &service.UserResponse{
		ID:          userID,
		Email:       "agent@acme.example",
		Role:        "agent",
		Active:      true,
		Permissions: []string{"calls:read", "dashboard:read"},
	}

	suite.mockUserService.EXPECT().
		GetByID(suite.org, userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/users/%s", userID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), userID, response.ID)
	assert.Contains(suite.T(), response.Permissions, "dashboard:read")
}

// TestGetUserInvalidID tests a malformed user ID
func (suite *UserHandlerTestSuite) TestGetUserInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/users/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid user ID")
}

// TestGetUserNotFound tests getting a member of another tenant
func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		GetByID(suite.org, userID).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/users/%s", userID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestChangeRole tests assigning a new role
func (suite *UserHandlerTestSuite) TestChangeRole() {
	userID := uuid.New()
	expected := &service.UserResponse{ID: userID, Email: "agent@acme.example", Role: "admin", Active: true}

	var captured *service.ChangeRoleRequest
	suite.mockUserService.EXPECT().
		ChangeRole(suite.org, suite.currentUser, userID, gomock.Any()).
		DoAndReturn(func(_ *models.Organization, _ *models.User, _ uuid.UUID, req *service.ChangeRoleRequest) (*service.UserResponse, error) {
			captured = req
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/users/%s/change_role", userID), map[string]interface{}{"role": "admin"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "admin", captured.Role)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "admin", response.Role)
}

// TestChangeRoleMissingRole tests the binding-level required check
func (suite *UserHandlerTestSuite) TestChangeRoleMissingRole() {
	userID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/users/%s/change_role", userID), map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
}

// TestChangeRoleForbidden tests the management hierarchy rejection
func (suite *UserHandlerTestSuite) TestChangeRoleForbidden() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		ChangeRole(suite.org, suite.currentUser, userID, gomock.Any()).
		Return(nil, apperrors.ErrInsufficientPermissions).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/users/%s/change_role", userID), map[string]interface{}{"role": "owner"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "insufficient permissions")
}

// TestToggleActive tests flipping the active flag
func (suite *UserHandlerTestSuite) TestToggleActive() {
	userID := uuid.New()
	expected := &service.UserResponse{ID: userID, Email: "agent@acme.example", Role: "agent", Active: false}

	suite.mockUserService.EXPECT().
		ToggleActive(suite.org, suite.currentUser, userID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/users/%s/toggle_active", userID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.False(suite.T(), response.Active)
}

// TestToggleActiveNotFound tests toggling a member of another tenant
func (suite *UserHandlerTestSuite) TestToggleActiveNotFound() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		ToggleActive(suite.org, suite.currentUser, userID).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/api/users/%s/toggle_active", userID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
