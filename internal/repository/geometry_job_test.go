//go:build integration
// +build integration

package repository

import (
	"sync"
	"testing"
	"time"

	"splint-factory-backend/internal/database/models"
	"splint-factory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GeometryJobRepositoryTestSuite tests the GeometryJobRepository
type GeometryJobRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GeometryJobRepository
	geometryRepo  *NamedGeometryRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *GeometryJobRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewGeometryJobRepository(suite.baseTestSuite.DB)
	suite.geometryRepo = NewNamedGeometryRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GeometryJobRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GeometryJobRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GeometryJobRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createGeometry persists a template so job foreign keys resolve
func (suite *GeometryJobRepositoryTestSuite) createGeometry() *models.NamedGeometry {
	geometry := suite.factories.NamedGeometry.Create()
	suite.NoError(suite.geometryRepo.Create(geometry))
	return geometry
}

// pendingJob persists a pending job for the given org and template
func (suite *GeometryJobRepositoryTestSuite) pendingJob(orgID, geometryID uuid.UUID) *models.GeometryJob {
	job := suite.factories.GeometryJob.WithOrganization(orgID)
	job.NamedGeometryID = geometryID
	suite.NoError(suite.repo.Create(job))
	return job
}

// TestCreateAndGetByID tests creating and retrieving a geometry job
func (suite *GeometryJobRepositoryTestSuite) TestCreateAndGetByID() {
	geometry := suite.createGeometry()
	job := suite.pendingJob(uuid.New(), geometry.ID)

	retrieved, err := suite.repo.GetByID(job.ID)

	suite.NoError(err)
	suite.Equal(job.ID, retrieved.ID)
	suite.Equal(models.GeometryJobPending, retrieved.Status)
	suite.NotNil(retrieved.NamedGeometry)
	suite.Equal(geometry.Name, retrieved.NamedGeometry.Name)
}

// TestGetByOrganizationID tests org scoping and the status filter
func (suite *GeometryJobRepositoryTestSuite) TestGetByOrganizationID() {
	geometry := suite.createGeometry()
	orgA := uuid.New()
	orgB := uuid.New()

	suite.pendingJob(orgA, geometry.ID)
	suite.pendingJob(orgA, geometry.ID)
	suite.pendingJob(orgB, geometry.ID)

	completed := suite.factories.GeometryJob.WithStatus(models.GeometryJobCompleted)
	completed.OrganizationID = orgA
	completed.NamedGeometryID = geometry.ID
	suite.NoError(suite.repo.Create(completed))

	jobs, total, err := suite.repo.GetByOrganizationID(orgA, "", 10, 0)
	suite.NoError(err)
	suite.Len(jobs, 3)
	suite.Equal(int64(3), total)

	jobs, total, err = suite.repo.GetByOrganizationID(orgA, models.GeometryJobCompleted, 10, 0)
	suite.NoError(err)
	suite.Len(jobs, 1)
	suite.Equal(int64(1), total)
	suite.Equal(completed.ID, jobs[0].ID)
}

// TestClaimNextPending tests that the oldest pending job is claimed
func (suite *GeometryJobRepositoryTestSuite) TestClaimNextPending() {
	geometry := suite.createGeometry()
	orgID := uuid.New()

	first := suite.factories.GeometryJob.WithOrganization(orgID)
	first.NamedGeometryID = geometry.ID
	first.CreatedAt = time.Now().Add(-2 * time.Minute)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.GeometryJob.WithOrganization(orgID)
	second.NamedGeometryID = geometry.ID
	suite.NoError(suite.repo.Create(second))

	claimed, err := suite.repo.ClaimNextPending(orgID, time.Now())

	suite.NoError(err)
	suite.Equal(first.ID, claimed.ID)
	suite.Equal(models.GeometryJobProcessing, claimed.Status)
	suite.NotNil(claimed.StartedAt)

	stored, err := suite.repo.GetByID(first.ID)
	suite.NoError(err)
	suite.Equal(models.GeometryJobProcessing, stored.Status)
}

// TestClaimNextPendingEmpty tests claiming from an empty queue
func (suite *GeometryJobRepositoryTestSuite) TestClaimNextPendingEmpty() {
	job, err := suite.repo.ClaimNextPending(uuid.New(), time.Now())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(job)
}

// TestClaimNextPendingScopedToOrg tests that another org's queue is untouched
func (suite *GeometryJobRepositoryTestSuite) TestClaimNextPendingScopedToOrg() {
	geometry := suite.createGeometry()
	suite.pendingJob(uuid.New(), geometry.ID)

	_, err := suite.repo.ClaimNextPending(uuid.New(), time.Now())

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestClaimNextPendingConcurrent tests that concurrent claims never hand the
// same job to two workers
func (suite *GeometryJobRepositoryTestSuite) TestClaimNextPendingConcurrent() {
	geometry := suite.createGeometry()
	orgID := uuid.New()
	for i := 0; i < 4; i++ {
		suite.pendingJob(orgID, geometry.ID)
	}

	var mu sync.Mutex
	claimed := make(map[uuid.UUID]int)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job, err := suite.repo.ClaimNextPending(orgID, time.Now())
			if err != nil {
				return
			}
			mu.Lock()
			claimed[job.ID]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	suite.Len(claimed, 4)
	for _, count := range claimed {
		suite.Equal(1, count)
	}
}

// TestUpdateStoresModelFile tests persisting the produced artifact
func (suite *GeometryJobRepositoryTestSuite) TestUpdateStoresModelFile() {
	geometry := suite.createGeometry()
	job := suite.pendingJob(uuid.New(), geometry.ID)

	now := time.Now()
	job.Status = models.GeometryJobCompleted
	job.CompletedAt = &now
	job.ModelFile = []byte("3mf-model-bytes")

	suite.NoError(suite.repo.Update(job))

	stored, err := suite.repo.GetByID(job.ID)
	suite.NoError(err)
	suite.Equal(models.GeometryJobCompleted, stored.Status)
	suite.Equal([]byte("3mf-model-bytes"), stored.ModelFile)
	suite.True(stored.HasModel())
}

// TestDelete tests deleting a geometry job
func (suite *GeometryJobRepositoryTestSuite) TestDelete() {
	geometry := suite.createGeometry()
	job := suite.pendingJob(uuid.New(), geometry.ID)

	suite.NoError(suite.repo.Delete(job.ID))

	_, err := suite.repo.GetByID(job.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestGeometryJobRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GeometryJobRepositoryTestSuite))
}
