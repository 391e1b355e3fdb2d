package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/projectpulse/project-management-api/internal/constants"
	"github.com/projectpulse/project-management-api/internal/database"
	"github.com/projectpulse/project-management-api/internal/models"
	"github.com/projectpulse/project-management-api/internal/repository"
	"github.com/projectpulse/project-management-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ProjectHandler
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	projectRepo := repository.NewProjectRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	suite.handler = NewProjectHandler(services.NewProjectService(projectRepo, userRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) createTestUser(username, email string) *models.User {
	hash := "hashedpassword"
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: &hash,
	}
	suite.db.Create(user)
	return user
}

func (suite *ProjectHandlerTestSuite) createTestProject(name, creator string, userID uint64) *models.Project {
	project := &models.Project{
		Name:    name,
		Creator: &creator,
		UserID:  userID,
		Status:  models.StatusActive,
	}
	suite.db.Create(project)
	return project
}

// createAuthContext builds a gin context carrying the identity snapshot
// the session resolver would have attached.
func (suite *ProjectHandlerTestSuite) createAuthContext(method, url string, body []byte, user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, user.ID)
	c.Set(constants.ContextKeyEmail, user.Email)
	c.Set(constants.ContextKeyUsername, user.Username)

	return c, w
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	user := suite.createTestUser("alice", "alice@example.com")

	body, _ := json.Marshal(map[string]string{
		"projectname":    "X",
		"email":          "alice@example.com",
		"projectcreator": "alice",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/projects", body, user)
	suite.handler.CreateProject(c)

	suite.Equal(http.StatusCreated, w.Code)

	var result map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(true, result["success"])

	var stored models.Project
	suite.Require().NoError(suite.db.First(&stored).Error)
	suite.Equal("X", stored.Name)
	suite.Equal(models.StatusActive, stored.Status)
	suite.Equal(user.ID, stored.UserID)
	suite.Require().NotNil(stored.Creator)
	suite.Equal("alice", *stored.Creator)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_UnknownEmail() {
	user := suite.createTestUser("alice", "alice@example.com")

	body, _ := json.Marshal(map[string]string{
		"projectname":    "X",
		"email":          "ghost@example.com",
		"projectcreator": "alice",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/projects", body, user)
	suite.handler.CreateProject(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_InvalidStatus() {
	user := suite.createTestUser("alice", "alice@example.com")

	body, _ := json.Marshal(map[string]string{
		"projectname":    "X",
		"email":          "alice@example.com",
		"projectcreator": "alice",
		"status":         "PENDING",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/projects", body, user)
	suite.handler.CreateProject(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_DateOnlyDeadlineRoundTrips() {
	user := suite.createTestUser("alice", "alice@example.com")

	body, _ := json.Marshal(map[string]string{
		"projectname":    "X",
		"email":          "alice@example.com",
		"projectcreator": "alice",
		"deadline":       "2025-12-31",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/projects", body, user)
	suite.handler.CreateProject(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var stored models.Project
	suite.Require().NoError(suite.db.First(&stored).Error)
	suite.Require().NotNil(stored.Deadline)

	serialized, err := json.Marshal(stored.Deadline)
	suite.Require().NoError(err)
	suite.Equal(`"2025-12-31T00:00:00Z"`, string(serialized))
}

func (suite *ProjectHandlerTestSuite) TestListProjects_ScopedToCreator() {
	alice := suite.createTestUser("alice", "alice@example.com")
	bob := suite.createTestUser("bob", "bob@example.com")

	suite.createTestProject("Alice Project", "alice", alice.ID)
	suite.createTestProject("Bob Project", "bob", bob.ID)

	c, w := suite.createAuthContext(http.MethodGet, "/api/projects", nil, alice)
	suite.handler.ListProjects(c)

	suite.Equal(http.StatusOK, w.Code)

	var response map[string][]models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	projects := response["projects"]
	suite.Require().Len(projects, 1)
	suite.Equal("Alice Project", projects[0].Name)
}

func (suite *ProjectHandlerTestSuite) TestListAllProjects_Unscoped() {
	alice := suite.createTestUser("alice", "alice@example.com")
	bob := suite.createTestUser("bob", "bob@example.com")

	suite.createTestProject("Alice Project", "alice", alice.ID)
	suite.createTestProject("Bob Project", "bob", bob.ID)

	c, w := suite.createAuthContext(http.MethodGet, "/api/projects/all", nil, alice)
	suite.handler.ListAllProjects(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Projects []models.Project `json:"projects"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Projects, 2)
}

func (suite *ProjectHandlerTestSuite) TestRespectiveProjects_MatchesScopedListing() {
	alice := suite.createTestUser("alice", "alice@example.com")
	suite.createTestProject("Alice Project", "alice", alice.ID)

	c1, w1 := suite.createAuthContext(http.MethodGet, "/api/projects", nil, alice)
	suite.handler.ListProjects(c1)
	c2, w2 := suite.createAuthContext(http.MethodGet, "/api/projects/respective", nil, alice)
	suite.handler.ListRespectiveProjects(c2)

	suite.Equal(http.StatusOK, w1.Code)
	suite.Equal(http.StatusOK, w2.Code)
	suite.JSONEq(w1.Body.String(), w2.Body.String())
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_ChangesOnlySuppliedFields() {
	alice := suite.createTestUser("alice", "alice@example.com")
	desc := "original description"
	deadline := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	project := &models.Project{
		Name:        "X",
		Description: &desc,
		Deadline:    &deadline,
		Creator:     &alice.Username,
		UserID:      alice.ID,
		Status:      models.StatusActive,
	}
	suite.Require().NoError(suite.db.Create(project).Error)

	body, _ := json.Marshal(map[string]any{
		"projectid":   project.ID,
		"projectname": "X",
		"status":      "COMPLETED",
	})

	c, w := suite.createAuthContext(http.MethodPut, "/api/projects", body, alice)
	suite.handler.UpdateProject(c)

	suite.Equal(http.StatusOK, w.Code)

	var stored models.Project
	suite.Require().NoError(suite.db.First(&stored, project.ID).Error)
	suite.Equal(models.StatusCompleted, stored.Status)
	suite.Equal("X", stored.Name)
	suite.Require().NotNil(stored.Description)
	suite.Equal(desc, *stored.Description)
	suite.Require().NotNil(stored.Deadline)
	suite.True(deadline.Equal(*stored.Deadline))
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_NoOwnershipCheck() {
	alice := suite.createTestUser("alice", "alice@example.com")
	bob := suite.createTestUser("bob", "bob@example.com")
	project := suite.createTestProject("Alice Project", "alice", alice.ID)

	body, _ := json.Marshal(map[string]any{
		"projectid":   project.ID,
		"projectname": "Taken Over",
	})

	// bob updates alice's project; no ownership predicate applies
	c, w := suite.createAuthContext(http.MethodPut, "/api/projects", body, bob)
	suite.handler.UpdateProject(c)

	suite.Equal(http.StatusOK, w.Code)

	var stored models.Project
	suite.Require().NoError(suite.db.First(&stored, project.ID).Error)
	suite.Equal("Taken Over", stored.Name)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_MissingRowFails() {
	alice := suite.createTestUser("alice", "alice@example.com")

	body, _ := json.Marshal(map[string]any{
		"projectid":   uint64(9999),
		"projectname": "Nope",
	})

	c, w := suite.createAuthContext(http.MethodPut, "/api/projects", body, alice)
	suite.handler.UpdateProject(c)

	suite.Equal(http.StatusInternalServerError, w.Code)

	var apiErr map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &apiErr))
	suite.Equal("OPERATION_FAILED", apiErr["code"])
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	alice := suite.createTestUser("alice", "alice@example.com")
	project := suite.createTestProject("Alice Project", "alice", alice.ID)

	c, w := suite.createAuthContext(http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil, alice)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}
	suite.handler.DeleteProject(c)

	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Project{}).Count(&count)
	suite.Equal(int64(0), count)

	// Deleting the same ID again fails
	c2, w2 := suite.createAuthContext(http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil, alice)
	c2.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}
	suite.handler.DeleteProject(c2)

	suite.Equal(http.StatusInternalServerError, w2.Code)

	var apiErr map[string]any
	suite.Require().NoError(json.Unmarshal(w2.Body.Bytes(), &apiErr))
	suite.Equal("OPERATION_FAILED", apiErr["code"])
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_InvalidID() {
	alice := suite.createTestUser("alice", "alice@example.com")

	c, w := suite.createAuthContext(http.MethodDelete, "/api/projects/abc", nil, alice)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	suite.handler.DeleteProject(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
