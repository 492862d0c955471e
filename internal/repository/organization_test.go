//go:build integration
// +build integration

package repository

import (
	"testing"

	"splint-factory-backend/internal/testutils"

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
	suite.NotZero(org.UpdatedAt)
}

// TestCreateDuplicateName tests creating an organization with duplicate name
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateName() {
	org1 := suite.factories.Organization.WithName("hand-clinic")
	err := suite.repo.Create(org1)
	suite.NoError(err)

	org2 := suite.factories.Organization.WithName("hand-clinic")

	err = suite.repo.Create(org2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.Create()
	err := suite.repo.Create(org)
	suite.NoError(err)

	retrievedOrg, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.NotNil(retrievedOrg)
	suite.Equal(org.ID, retrievedOrg.ID)
	suite.Equal(org.Name, retrievedOrg.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	nonExistentID := uuid.New()

	org, err := suite.repo.GetByID(nonExistentID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(org)
}

// TestGetByName tests retrieving an organization by name
func (suite *OrganizationRepositoryTestSuite) TestGetByName() {
	org := suite.factories.Organization.WithName("ortho-lab")
	err := suite.repo.Create(org)
	suite.NoError(err)

	retrievedOrg, err := suite.repo.GetByName("ortho-lab")

	suite.NoError(err)
	suite.NotNil(retrievedOrg)
	suite.Equal(org.ID, retrievedOrg.ID)
	suite.Equal("ortho-lab", retrievedOrg.Name)
}

// TestGetAll tests listing organizations with pagination
func (suite *OrganizationRepositoryTestSuite) TestGetAll() {
	for _, name := range []string{"clinic-a", "clinic-b", "clinic-c"} {
		err := suite.repo.Create(suite.factories.Organization.WithName(name))
		suite.NoError(err)
	}

	orgs, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Len(orgs, 3)
	suite.Equal(int64(3), total)
	// name ASC ordering
	suite.Equal("clinic-a", orgs[0].Name)
	suite.Equal("clinic-c", orgs[2].Name)

	page, total, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(page, 1)
	suite.Equal(int64(3), total)
}

// TestUpdate tests updating an organization
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.Create()
	err := suite.repo.Create(org)
	suite.NoError(err)

	org.Description = "Updated description"

	err = suite.repo.Update(org)
	suite.NoError(err)

	updatedOrg, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal("Updated description", updatedOrg.Description)
}

// TestDelete tests deleting an organization
func (suite *OrganizationRepositoryTestSuite) TestDelete() {
	org := suite.factories.Organization.Create()
	err := suite.repo.Create(org)
	suite.NoError(err)

	err = suite.repo.Delete(org.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(org.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteCascadesUsers tests that deleting an organization removes its users
func (suite *OrganizationRepositoryTestSuite) TestDeleteCascadesUsers() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	user := suite.factories.User.WithOrganization(org.ID)
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	suite.NoError(userRepo.Create(user))

	suite.NoError(suite.repo.Delete(org.ID))

	_, err := userRepo.GetByID(user.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
