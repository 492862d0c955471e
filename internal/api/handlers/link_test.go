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

// LinkHandlerTestSuite defines the test suite for LinkHandler
type LinkHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	service   *mocks.MockLinkServiceInterface
	handler   *LinkHandler
	httpSuite *testutils.HTTPTestSuite
	userID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *LinkHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockLinkServiceInterface(suite.ctrl)
	suite.handler = NewLinkHandler(suite.service)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	links := suite.httpSuite.Router.Group("/api/v1/links")
	links.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID.String())
	})
	{
		links.POST("", suite.handler.Create)
		links.GET("", suite.handler.GetAll)
		links.DELETE("/:id", suite.handler.Delete)
	}

	suite.httpSuite.Router.GET("/l/:slug", suite.handler.Resolve)
}

// TearDownTest cleans up after each test
func (suite *LinkHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests registering a shortlink
func (suite *LinkHandlerTestSuite) TestCreate() {
	linkID := uuid.New()
	requestBody := map[string]interface{}{
		"slug":       "splint-guide",
		"target_url": "https://docs.example.com/printing/splint-guide",
	}

	expected := &service.LinkResponse{
		ID:        linkID,
		Slug:      "splint-guide",
		TargetURL: "https://docs.example.com/printing/splint-guide",
	}

	suite.service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(createdBy *uuid.UUID, req *service.CreateLinkRequest) (*service.LinkResponse, error) {
			assert.Equal(suite.T(), suite.userID, *createdBy)
			assert.Equal(suite.T(), "splint-guide", req.Slug)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/links", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.LinkResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "splint-guide", response.Slug)
}

// TestCreateDuplicateSlug tests registering a taken slug
func (suite *LinkHandlerTestSuite) TestCreateDuplicateSlug() {
	requestBody := map[string]interface{}{
		"slug":       "splint-guide",
		"target_url": "https://docs.example.com/printing/splint-guide",
	}

	suite.service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrLinkExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/links", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestGetAll tests listing shortlinks
func (suite *LinkHandlerTestSuite) TestGetAll() {
	expected := &service.LinkListResponse{
		Links: []service.LinkResponse{
			{ID: uuid.New(), Slug: "splint-guide", VisitCount: 12},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.service.EXPECT().
		GetAll(1, 20).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/links", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LinkListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Links, 1)
	assert.Equal(suite.T(), int64(12), response.Links[0].VisitCount)
}

// TestResolve tests following a shortlink
func (suite *LinkHandlerTestSuite) TestResolve() {
	suite.service.EXPECT().
		Resolve("splint-guide").
		Return("https://docs.example.com/printing/splint-guide", nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/l/splint-guide", nil)

	assert.Equal(suite.T(), http.StatusFound, recorder.Code)
	assert.Equal(suite.T(), "https://docs.example.com/printing/splint-guide", recorder.Header().Get("Location"))
}

// TestResolveUnknownSlug tests following a slug that was never registered
func (suite *LinkHandlerTestSuite) TestResolveUnknownSlug() {
	suite.service.EXPECT().
		Resolve("gone").
		Return("", apperrors.ErrLinkNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/l/gone", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "link not found")
}

// TestDelete tests deleting a shortlink
func (suite *LinkHandlerTestSuite) TestDelete() {
	linkID := uuid.New()

	suite.service.EXPECT().
		Delete(linkID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/links/%s", linkID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestLinkHandlerTestSuite runs the test suite
func TestLinkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LinkHandlerTestSuite))
}
