package handlers_test

import (
	"net/http"
	"testing"

	"client-portal-backend/internal/api/handlers"
	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/mocks"
	"client-portal-backend/internal/repository"
	"client-portal-backend/internal/service"
	"client-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogHandlerTestSuite defines the test suite for CatalogHandler
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCatalogServiceInterface
	http        *testutils.HTTPTestSuite
	factory     *testutils.CatalogProjectFactory
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	suite.factory = testutils.NewCatalogProjectFactory()

	handler := handlers.NewCatalogHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	projects := suite.http.Router.Group("/projects")
	projects.GET("", handler.List)
	projects.GET("/featured", handler.GetFeatured)
	projects.GET("/categories", handler.GetCategories)
	projects.GET("/tech-stack", handler.GetTechStack)
	projects.GET("/stats", handler.GetStats)
	projects.GET("/:slug", handler.GetBySlug)
	projects.POST("", handler.Create)
	projects.PUT("/:id", handler.Update)
	projects.DELETE("/:id", handler.Delete)
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestList() {
	project := suite.factory.Create()
	featured := true
	suite.mockService.EXPECT().
		List(gomock.Any(), &service.CatalogListRequest{Page: 2, Limit: 5, Category: "e-commerce", Featured: &featured, Sort: models.CatalogSort("name")}).
		Return(&service.CatalogListResponse{
			Projects:   []models.CatalogProject{*project},
			Pagination: service.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2},
		}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/projects?page=2&limit=5&category=e-commerce&featured=true&sort=name", nil)

	var body struct {
		Data service.CatalogListResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	suite.Equal(2, body.Data.Pagination.Pages)
	suite.Require().Len(body.Data.Projects, 1)
	suite.Equal(project.Slug, body.Data.Projects[0].Slug)
}

func (suite *CatalogHandlerTestSuite) TestListInvalidQuery() {
	w := suite.http.MakeRequest(http.MethodGet, "/projects?page=abc", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "validation failed")
}

func (suite *CatalogHandlerTestSuite) TestAggregates() {
	suite.mockService.EXPECT().GetFeatured(gomock.Any(), 3).Return([]models.CatalogProject{}, nil)
	w := suite.http.MakeRequest(http.MethodGet, "/projects/featured?limit=3", nil)
	suite.JSONEq(`{"status":"success","data":{"projects":[]}}`, w.Body.String())

	suite.mockService.EXPECT().GetCategories(gomock.Any()).Return([]string{"e-commerce", "saas"}, nil)
	w = suite.http.MakeRequest(http.MethodGet, "/projects/categories", nil)
	suite.JSONEq(`{"status":"success","data":{"categories":["e-commerce","saas"]}}`, w.Body.String())

	suite.mockService.EXPECT().GetTechStack(gomock.Any()).Return([]repository.TechUsage{{Name: "Go", Count: 4}}, nil)
	w = suite.http.MakeRequest(http.MethodGet, "/projects/tech-stack", nil)
	suite.JSONEq(`{"status":"success","data":{"techStack":[{"name":"Go","count":4}]}}`, w.Body.String())

	suite.mockService.EXPECT().GetStats(gomock.Any()).Return(&service.CatalogStats{TotalProjects: 3, Performance: 93.3}, nil)
	w = suite.http.MakeRequest(http.MethodGet, "/projects/stats", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"performance":93.3`)
}

func (suite *CatalogHandlerTestSuite) TestGetBySlug() {
	project := suite.factory.WithSlug("acme-storefront")
	suite.mockService.EXPECT().GetBySlug(gomock.Any(), "acme-storefront").Return(project, nil)
	w := suite.http.MakeRequest(http.MethodGet, "/projects/acme-storefront", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockService.EXPECT().GetBySlug(gomock.Any(), "missing").Return(nil, apperrors.ErrCatalogProjectNotFound)
	w = suite.http.MakeRequest(http.MethodGet, "/projects/missing", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "catalog project not found")
}

func (suite *CatalogHandlerTestSuite) TestCreate() {
	req := service.CatalogProjectRequest{Title: "Acme Storefront", Description: "Retail", Category: "e-commerce"}

	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(suite.factory.Create(), nil)
	w := suite.http.MakeRequest(http.MethodPost, "/projects", req)
	suite.Equal(http.StatusCreated, w.Code)

	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrSlugExists)
	w = suite.http.MakeRequest(http.MethodPost, "/projects", req)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "slug already exists")
}

func (suite *CatalogHandlerTestSuite) TestUpdateAndDelete() {
	project := suite.factory.Create()
	req := service.CatalogProjectRequest{Title: "Renamed", Description: "Retail", Category: "e-commerce"}

	suite.mockService.EXPECT().Update(gomock.Any(), project.ID, gomock.Any()).Return(project, nil)
	w := suite.http.MakeRequest(http.MethodPut, "/projects/"+project.ID.String(), req)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockService.EXPECT().Delete(gomock.Any(), project.ID).Return(nil)
	w = suite.http.MakeRequest(http.MethodDelete, "/projects/"+project.ID.String(), nil)
	suite.Equal(http.StatusNoContent, w.Code)

	missing := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), missing).Return(apperrors.ErrCatalogProjectNotFound)
	w = suite.http.MakeRequest(http.MethodDelete, "/projects/"+missing.String(), nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "catalog project not found")
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
