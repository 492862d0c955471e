//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"splint-factory-backend/internal/database/models"
	"splint-factory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PrintJobRepositoryTestSuite tests the PrintJobRepository
type PrintJobRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PrintJobRepository
	geometryRepo  *NamedGeometryRepository
	jobRepo       *GeometryJobRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PrintJobRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPrintJobRepository(suite.baseTestSuite.DB)
	suite.geometryRepo = NewNamedGeometryRepository(suite.baseTestSuite.DB)
	suite.jobRepo = NewGeometryJobRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PrintJobRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PrintJobRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PrintJobRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createGeometryJob persists a completed geometry job for print tests
func (suite *PrintJobRepositoryTestSuite) createGeometryJob(orgID uuid.UUID) *models.GeometryJob {
	geometry := suite.factories.NamedGeometry.Create()
	suite.NoError(suite.geometryRepo.Create(geometry))

	job := suite.factories.GeometryJob.WithStatus(models.GeometryJobCompleted)
	job.OrganizationID = orgID
	job.NamedGeometryID = geometry.ID
	suite.NoError(suite.jobRepo.Create(job))
	return job
}

// TestCreateAndGetByID tests creating and retrieving a print job
func (suite *PrintJobRepositoryTestSuite) TestCreateAndGetByID() {
	orgID := uuid.New()
	geometryJob := suite.createGeometryJob(orgID)

	printJob := suite.factories.PrintJob.WithOrganization(orgID)
	printJob.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(printJob))

	retrieved, err := suite.repo.GetByID(printJob.ID)

	suite.NoError(err)
	suite.Equal(printJob.ID, retrieved.ID)
	suite.Equal(models.PrintStatusReady, retrieved.Status())
	suite.NotNil(retrieved.GeometryJob)
	suite.Equal(geometryJob.ID, retrieved.GeometryJob.ID)
}

// TestGetReadyByOrganizationID tests the printer's work list ordering
func (suite *PrintJobRepositoryTestSuite) TestGetReadyByOrganizationID() {
	orgID := uuid.New()
	geometryJob := suite.createGeometryJob(orgID)

	older := suite.factories.PrintJob.WithOrganization(orgID)
	older.GeometryJobID = geometryJob.ID
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Create(older))

	newer := suite.factories.PrintJob.WithOrganization(orgID)
	newer.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(newer))

	started := suite.factories.PrintJob.Started(40)
	started.OrganizationID = orgID
	started.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(started))

	ready, err := suite.repo.GetReadyByOrganizationID(orgID)

	suite.NoError(err)
	suite.Len(ready, 2)
	suite.Equal(older.ID, ready[0].ID)
	suite.Equal(newer.ID, ready[1].ID)
}

// TestUpdateLifecycle tests walking a print job through its timestamps
func (suite *PrintJobRepositoryTestSuite) TestUpdateLifecycle() {
	orgID := uuid.New()
	geometryJob := suite.createGeometryJob(orgID)

	printJob := suite.factories.PrintJob.WithOrganization(orgID)
	printJob.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(printJob))

	now := time.Now()
	printJob.PrintStartedTime = &now
	printJob.Progress = 55
	printJob.ProgressLastReportTime = &now
	suite.NoError(suite.repo.Update(printJob))

	stored, err := suite.repo.GetByID(printJob.ID)
	suite.NoError(err)
	suite.Equal(models.PrintStatusPrinting, stored.Status())
	suite.Equal(55, stored.Progress)

	done := time.Now()
	successful := true
	stored.PrintCompletedTime = &done
	stored.PrintSuccessful = &successful
	suite.NoError(suite.repo.Update(stored))

	stored, err = suite.repo.GetByID(printJob.ID)
	suite.NoError(err)
	suite.Equal(models.PrintStatusSuccessful, stored.Status())
}

// TestGetByOrganizationIDScoping tests that another org's jobs stay hidden
func (suite *PrintJobRepositoryTestSuite) TestGetByOrganizationIDScoping() {
	orgA := uuid.New()
	orgB := uuid.New()
	jobA := suite.createGeometryJob(orgA)
	jobB := suite.createGeometryJob(orgB)

	printA := suite.factories.PrintJob.WithOrganization(orgA)
	printA.GeometryJobID = jobA.ID
	suite.NoError(suite.repo.Create(printA))

	printB := suite.factories.PrintJob.WithOrganization(orgB)
	printB.GeometryJobID = jobB.ID
	suite.NoError(suite.repo.Create(printB))

	jobs, total, err := suite.repo.GetByOrganizationID(orgA, "", 10, 0)

	suite.NoError(err)
	suite.Len(jobs, 1)
	suite.Equal(int64(1), total)
	suite.Equal(printA.ID, jobs[0].ID)
}

// TestGetByOrganizationIDStatusFilter tests filtering by derived status
func (suite *PrintJobRepositoryTestSuite) TestGetByOrganizationIDStatusFilter() {
	orgID := uuid.New()
	geometryJob := suite.createGeometryJob(orgID)

	ready := suite.factories.PrintJob.WithOrganization(orgID)
	ready.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(ready))

	printing := suite.factories.PrintJob.Started(30)
	printing.OrganizationID = orgID
	printing.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(printing))

	failed := suite.factories.PrintJob.Completed(false)
	failed.OrganizationID = orgID
	failed.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(failed))

	successful := suite.factories.PrintJob.Completed(true)
	successful.OrganizationID = orgID
	successful.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(successful))

	for status, wantID := range map[models.PrintStatus]uuid.UUID{
		models.PrintStatusReady:      ready.ID,
		models.PrintStatusPrinting:   printing.ID,
		models.PrintStatusFailed:     failed.ID,
		models.PrintStatusSuccessful: successful.ID,
	} {
		jobs, total, err := suite.repo.GetByOrganizationID(orgID, status, 10, 0)
		suite.NoError(err)
		suite.Equal(int64(1), total, "status %s", status)
		suite.Len(jobs, 1)
		suite.Equal(wantID, jobs[0].ID)
		suite.Equal(status, jobs[0].Status())
	}
}

// TestDeleteCascadeFromGeometryJob tests that removing the geometry job
// removes its print attempts
func (suite *PrintJobRepositoryTestSuite) TestDeleteCascadeFromGeometryJob() {
	orgID := uuid.New()
	geometryJob := suite.createGeometryJob(orgID)

	printJob := suite.factories.PrintJob.WithOrganization(orgID)
	printJob.GeometryJobID = geometryJob.ID
	suite.NoError(suite.repo.Create(printJob))

	suite.NoError(suite.jobRepo.Delete(geometryJob.ID))

	_, err := suite.repo.GetByID(printJob.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestPrintJobRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PrintJobRepositoryTestSuite))
}
