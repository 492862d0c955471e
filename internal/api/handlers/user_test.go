package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/mocks"
	"splint-factory-backend/internal/service"
	"splint-factory-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	service   *mocks.MockUserServiceInterface
	handler   *UserHandler
	httpSuite *testutils.HTTPTestSuite

	callerID    uuid.UUID
	callerOrgID uuid.UUID
	callerRole  string
}

// SetupTest sets up the test suite. The default caller is an ORG_ADMIN;
// tests mutate callerRole and callerOrgID before issuing requests.
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.service)

	suite.callerID = uuid.New()
	suite.callerOrgID = uuid.New()
	suite.callerRole = "ORG_ADMIN"

	suite.httpSuite = testutils.SetupHTTPTest()

	users := suite.httpSuite.Router.Group("/api/v1/users")
	users.Use(func(c *gin.Context) {
		c.Set("user_id", suite.callerID.String())
		c.Set("organization_id", suite.callerOrgID.String())
		c.Set("role", suite.callerRole)
	})
	{
		users.POST("", suite.handler.Create)
		users.GET("/me", suite.handler.Me)
		users.GET("/:id", suite.handler.GetByID)
		users.PUT("/:id", suite.handler.Update)
		users.PUT("/:id/password", suite.handler.ChangePassword)
		users.DELETE("/:id", suite.handler.Delete)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) sameOrgUser(id uuid.UUID) *service.UserResponse {
	orgID := suite.callerOrgID
	return &service.UserResponse{
		ID:             id,
		OrganizationID: &orgID,
		FirstName:      "Noa",
		LastName:       "Adler",
		Email:          "noa@hand-therapy.example",
		Role:           "MEMBER",
	}
}

func (suite *UserHandlerTestSuite) foreignOrgUser(id uuid.UUID) *service.UserResponse {
	otherOrg := uuid.New()
	return &service.UserResponse{
		ID:             id,
		OrganizationID: &otherOrg,
		FirstName:      "Dana",
		LastName:       "Weiss",
		Email:          "dana@other-clinic.example",
		Role:           "MEMBER",
	}
}

// TestCreate tests creating a user inside the caller's organization
func (suite *UserHandlerTestSuite) TestCreate() {
	userID := uuid.New()
	requestBody := map[string]interface{}{
		"organization_id": suite.callerOrgID.String(),
		"first_name":      "Noa",
		"last_name":       "Adler",
		"email":           "noa@hand-therapy.example",
		"password":        "splint-factory-1",
		"role":            "MEMBER",
	}

	suite.service.EXPECT().
		Create(gomock.Any()).
		Return(suite.sameOrgUser(userID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), userID, response.ID)
}

// TestCreateInForeignOrganization tests that an ORG_ADMIN cannot create a
// user in another organization
func (suite *UserHandlerTestSuite) TestCreateInForeignOrganization() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New().String(),
		"first_name":      "Dana",
		"last_name":       "Weiss",
		"email":           "dana@other-clinic.example",
		"password":        "splint-factory-1",
		"role":            "MEMBER",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestCreateSystemAdminByOrgAdmin tests that an ORG_ADMIN cannot mint a
// system administrator
func (suite *UserHandlerTestSuite) TestCreateSystemAdminByOrgAdmin() {
	requestBody := map[string]interface{}{
		"first_name": "Eve",
		"last_name":  "Lurker",
		"email":      "eve@hand-therapy.example",
		"password":   "splint-factory-1",
		"role":       "SYSTEM_ADMIN",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "SYSTEM_ADMIN")
}

// TestGetByID tests reading a user of the caller's own organization
func (suite *UserHandlerTestSuite) TestGetByID() {
	userID := uuid.New()

	suite.service.EXPECT().
		GetByID(userID).
		Return(suite.sameOrgUser(userID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/users/%s", userID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), userID, response.ID)
}

// TestGetByIDCrossOrganization tests that a user of another organization is
// reported as missing, not exposed
func (suite *UserHandlerTestSuite) TestGetByIDCrossOrganization() {
	suite.callerRole = "MEMBER"
	userID := uuid.New()

	suite.service.EXPECT().
		GetByID(userID).
		Return(suite.foreignOrgUser(userID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/users/%s", userID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestGetByIDCrossOrganizationAsSystemAdmin tests that a system
// administrator still reaches every organization's users
func (suite *UserHandlerTestSuite) TestGetByIDCrossOrganizationAsSystemAdmin() {
	suite.callerRole = "SYSTEM_ADMIN"
	userID := uuid.New()

	suite.service.EXPECT().
		GetByID(userID).
		Return(suite.foreignOrgUser(userID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/users/%s", userID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUpdate tests updating a user of the caller's own organization
func (suite *UserHandlerTestSuite) TestUpdate() {
	userID := uuid.New()
	requestBody := map[string]interface{}{
		"first_name": "Noa",
		"last_name":  "Adler-Stern",
		"role":       "MEMBER",
	}

	updated := suite.sameOrgUser(userID)
	updated.LastName = "Adler-Stern"

	suite.service.EXPECT().
		GetByID(userID).
		Return(suite.sameOrgUser(userID), nil).
		Times(1)
	suite.service.EXPECT().
		Update(userID, gomock.Any()).
		Return(updated, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/users/%s", userID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Adler-Stern", response.LastName)
}

// TestUpdateCrossOrganization tests that an ORG_ADMIN cannot mutate another
// organization's user
func (suite *UserHandlerTestSuite) TestUpdateCrossOrganization() {
	userID := uuid.New()
	requestBody := map[string]interface{}{
		"first_name": "Dana",
		"last_name":  "Weiss",
		"role":       "MEMBER",
	}

	suite.service.EXPECT().
		GetByID(userID).
		Return(suite.foreignOrgUser(userID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/users/%s", userID), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestUpdateRoleEscalation tests that an ORG_ADMIN cannot promote a user to
// system administrator
func (suite *UserHandlerTestSuite) TestUpdateRoleEscalation() {
	userID := uuid.New()
	requestBody := map[string]interface{}{
		"first_name": "Noa",
		"last_name":  "Adler",
		"role":       "SYSTEM_ADMIN",
	}

	suite.service.EXPECT().
		GetByID(userID).
		Return(suite.sameOrgUser(userID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/users/%s", userID), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "SYSTEM_ADMIN")
}

// TestChangePassword tests the account owner changing their own password
func (suite *UserHandlerTestSuite) TestChangePassword() {
	requestBody := map[string]interface{}{
		"current_password": "old-password-1",
		"new_password":     "new-password-1",
	}

	suite.service.EXPECT().
		ChangePassword(suite.callerID, gomock.Any()).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/users/%s/password", suite.callerID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestChangePasswordForOtherUser tests that only the account owner can
// change a password
func (suite *UserHandlerTestSuite) TestChangePasswordForOtherUser() {
	requestBody := map[string]interface{}{
		"current_password": "old-password-1",
		"new_password":     "new-password-1",
	}

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/users/%s/password", uuid.New()), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "your own password")
}

// TestDelete tests deleting a user of the caller's own organization
func (suite *UserHandlerTestSuite) TestDelete() {
	userID := uuid.New()

	suite.service.EXPECT().
		GetByID(userID).
		Return(suite.sameOrgUser(userID), nil).
		Times(1)
	suite.service.EXPECT().
		Delete(userID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/users/%s", userID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteCrossOrganization tests that an ORG_ADMIN cannot delete another
// organization's user
func (suite *UserHandlerTestSuite) TestDeleteCrossOrganization() {
	userID := uuid.New()

	suite.service.EXPECT().
		GetByID(userID).
		Return(suite.foreignOrgUser(userID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/users/%s", userID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestDeleteNotFound tests deleting a missing user
func (suite *UserHandlerTestSuite) TestDeleteNotFound() {
	userID := uuid.New()

	suite.service.EXPECT().
		GetByID(userID).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/users/%s", userID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestMe tests the authenticated profile endpoint
func (suite *UserHandlerTestSuite) TestMe() {
	suite.service.EXPECT().
		GetByID(suite.callerID).
		Return(suite.sameOrgUser(suite.callerID), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users/me", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), suite.callerID, response.ID)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
