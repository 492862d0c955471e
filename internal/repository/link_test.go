//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"splint-factory-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LinkRepositoryTestSuite tests the LinkRepository
type LinkRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LinkRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LinkRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLinkRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LinkRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LinkRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LinkRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetBySlug tests creating and resolving a link
func (suite *LinkRepositoryTestSuite) TestCreateAndGetBySlug() {
	link := suite.factories.Link.WithSlug("fit-guide")
	suite.NoError(suite.repo.Create(link))

	retrieved, err := suite.repo.GetBySlug("fit-guide")

	suite.NoError(err)
	suite.Equal(link.ID, retrieved.ID)
	suite.Equal(link.TargetURL, retrieved.TargetURL)
	suite.Equal(int64(0), retrieved.VisitCount)
}

// TestGetBySlugNotFound tests resolving an unknown slug
func (suite *LinkRepositoryTestSuite) TestGetBySlugNotFound() {
	link, err := suite.repo.GetBySlug("missing")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(link)
}

// TestCreateDuplicateSlug tests the unique slug constraint
func (suite *LinkRepositoryTestSuite) TestCreateDuplicateSlug() {
	suite.NoError(suite.repo.Create(suite.factories.Link.WithSlug("dup")))

	err := suite.repo.Create(suite.factories.Link.WithSlug("dup"))

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestRecordVisit tests that visits increment atomically
func (suite *LinkRepositoryTestSuite) TestRecordVisit() {
	link := suite.factories.Link.Create()
	suite.NoError(suite.repo.Create(link))

	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.RecordVisit(link.ID, time.Now()))
	}

	stored, err := suite.repo.GetByID(link.ID)
	suite.NoError(err)
	suite.Equal(int64(3), stored.VisitCount)
	suite.NotNil(stored.LastVisitedAt)
}

// Run the test suite
func TestLinkRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LinkRepositoryTestSuite))
}
