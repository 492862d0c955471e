package service_test

import (
	"testing"
	"time"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/events"
	"splint-factory-backend/internal/mocks"
	"splint-factory-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PrintJobServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockPrintJobRepositoryInterface
	jobRepo *mocks.MockGeometryJobRepositoryInterface
	hub     *events.Hub
	stream  <-chan events.Event
	svc     *service.PrintJobService
}

func (s *PrintJobServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockPrintJobRepositoryInterface(s.ctrl)
	s.jobRepo = mocks.NewMockGeometryJobRepositoryInterface(s.ctrl)
	s.hub = events.NewHub()
	s.stream = s.hub.Subscribe()
	s.svc = service.NewPrintJobService(s.repo, s.jobRepo, s.hub, validator.New())
}

func (s *PrintJobServiceTestSuite) TearDownTest() {
	s.hub.Close()
	s.ctrl.Finish()
}

func (s *PrintJobServiceTestSuite) expectEvent(eventType events.EventType) events.Event {
	select {
	case event := <-s.stream:
		s.Equal(eventType, event.Type)
		return event
	case <-time.After(time.Second):
		s.FailNow("expected a " + string(eventType) + " event on the stream")
		return events.Event{}
	}
}

func (s *PrintJobServiceTestSuite) readyJob(orgID uuid.UUID) *models.PrintJob {
	return &models.PrintJob{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		GeometryJobID:  uuid.New(),
		OrganizationID: orgID,
	}
}

func (s *PrintJobServiceTestSuite) startedJob(orgID uuid.UUID) *models.PrintJob {
	job := s.readyJob(orgID)
	started := time.Now().Add(-time.Hour)
	job.PrintStartedTime = &started
	job.Progress = 40
	return job
}

func (s *PrintJobServiceTestSuite) completedJob(orgID uuid.UUID, successful bool) *models.PrintJob {
	job := s.startedJob(orgID)
	completed := time.Now().Add(-time.Minute)
	job.PrintCompletedTime = &completed
	job.PrintSuccessful = &successful
	return job
}

func (s *PrintJobServiceTestSuite) TestCreateRequiresCompletedGeometryJob() {
	orgID := uuid.New()
	geometryJob := &models.GeometryJob{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Status:         models.GeometryJobProcessing,
	}
	s.jobRepo.EXPECT().GetByID(geometryJob.ID).Return(geometryJob, nil)

	resp, err := s.svc.Create(orgID, &service.CreatePrintJobRequest{GeometryJobID: geometryJob.ID})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrGeometryJobNotCompleted)
}

func (s *PrintJobServiceTestSuite) TestCreateHidesOtherOrganizationsGeometryJob() {
	geometryJob := &models.GeometryJob{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Status:         models.GeometryJobCompleted,
	}
	s.jobRepo.EXPECT().GetByID(geometryJob.ID).Return(geometryJob, nil)

	resp, err := s.svc.Create(uuid.New(), &service.CreatePrintJobRequest{GeometryJobID: geometryJob.ID})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrGeometryJobNotFound)
}

func (s *PrintJobServiceTestSuite) TestCreateQueuesReadyJob() {
	orgID := uuid.New()
	geometryJob := &models.GeometryJob{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Status:         models.GeometryJobCompleted,
	}
	s.jobRepo.EXPECT().GetByID(geometryJob.ID).Return(geometryJob, nil)
	s.repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := s.svc.Create(orgID, &service.CreatePrintJobRequest{
		GeometryJobID: geometryJob.ID,
		PrinterName:   "prusa-01",
	})

	s.Require().NoError(err)
	s.Equal(models.PrintStatusReady, resp.Status)
	s.Equal("prusa-01", resp.PrinterName)
}

func (s *PrintJobServiceTestSuite) TestStartPublishesEvent() {
	orgID := uuid.New()
	job := s.readyJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)
	s.repo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := s.svc.Start(orgID, job.ID, &service.StartPrintRequest{PrinterName: "prusa-02"})

	s.Require().NoError(err)
	s.Equal(models.PrintStatusPrinting, resp.Status)
	s.Equal("prusa-02", resp.PrinterName)
	s.NotNil(resp.PrintStartedTime)

	event := s.expectEvent(events.EventStarted)
	s.Equal(job.ID, event.ID)
}

func (s *PrintJobServiceTestSuite) TestStartTwice() {
	orgID := uuid.New()
	job := s.startedJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)

	resp, err := s.svc.Start(orgID, job.ID, &service.StartPrintRequest{})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrPrintAlreadyStarted)
}

func (s *PrintJobServiceTestSuite) TestReportProgress() {
	orgID := uuid.New()
	job := s.startedJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)
	s.repo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := s.svc.ReportProgress(orgID, job.ID, &service.ReportProgressRequest{Progress: 55})

	s.Require().NoError(err)
	s.Equal(55, resp.Progress)
	s.NotNil(resp.ProgressLastReportTime)

	event := s.expectEvent(events.EventProgress)
	s.Equal(55, event.Progress)
}

func (s *PrintJobServiceTestSuite) TestReportProgressOutOfRange() {
	resp, err := s.svc.ReportProgress(uuid.New(), uuid.New(), &service.ReportProgressRequest{Progress: 101})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrInvalidProgress)
}

func (s *PrintJobServiceTestSuite) TestReportProgressBeforeStart() {
	orgID := uuid.New()
	job := s.readyJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)

	resp, err := s.svc.ReportProgress(orgID, job.ID, &service.ReportProgressRequest{Progress: 10})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrPrintNotStarted)
}

func (s *PrintJobServiceTestSuite) TestReportProgressAfterCompletion() {
	orgID := uuid.New()
	job := s.completedJob(orgID, true)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)

	resp, err := s.svc.ReportProgress(orgID, job.ID, &service.ReportProgressRequest{Progress: 90})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrPrintAlreadyCompleted)
}

func (s *PrintJobServiceTestSuite) TestCompleteSuccessfulForcesFullProgress() {
	orgID := uuid.New()
	job := s.startedJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)
	s.repo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := s.svc.Complete(orgID, job.ID, &service.CompletePrintRequest{Successful: true})

	s.Require().NoError(err)
	s.Equal(models.PrintStatusSuccessful, resp.Status)
	s.Equal(100, resp.Progress)

	s.expectEvent(events.EventCompleted)
}

func (s *PrintJobServiceTestSuite) TestCompleteFailedKeepsProgress() {
	orgID := uuid.New()
	job := s.startedJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)
	s.repo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := s.svc.Complete(orgID, job.ID, &service.CompletePrintRequest{Successful: false})

	s.Require().NoError(err)
	s.Equal(models.PrintStatusFailed, resp.Status)
	s.Equal(40, resp.Progress)
}

func (s *PrintJobServiceTestSuite) TestDecideAccept() {
	orgID := uuid.New()
	job := s.completedJob(orgID, true)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)
	s.repo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := s.svc.Decide(orgID, job.ID, &service.DecideRequest{Decision: models.DecisionAccepted})

	s.Require().NoError(err)
	s.Equal(models.PrintStatusAccepted, resp.Status)
	s.NotNil(resp.DecisionTime)

	s.expectEvent(events.EventDecision)
}

func (s *PrintJobServiceTestSuite) TestDecideBeforeCompletion() {
	orgID := uuid.New()
	job := s.startedJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)

	resp, err := s.svc.Decide(orgID, job.ID, &service.DecideRequest{Decision: models.DecisionAccepted})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrPrintNotCompleted)
}

func (s *PrintJobServiceTestSuite) TestDecideOnFailedPrint() {
	orgID := uuid.New()
	job := s.completedJob(orgID, false)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)

	resp, err := s.svc.Decide(orgID, job.ID, &service.DecideRequest{Decision: models.DecisionRejected})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrDecisionNotAllowed)
}

func (s *PrintJobServiceTestSuite) TestDecideTwice() {
	orgID := uuid.New()
	job := s.completedJob(orgID, true)
	decision := models.DecisionAccepted
	now := time.Now()
	job.Decision = &decision
	job.DecisionTime = &now
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)

	resp, err := s.svc.Decide(orgID, job.ID, &service.DecideRequest{Decision: models.DecisionRejected})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrDecisionAlreadyMade)
}

func (s *PrintJobServiceTestSuite) TestUploadAndDownloadGcode() {
	orgID := uuid.New()
	job := s.readyJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil).Times(2)
	s.repo.EXPECT().Update(gomock.Any()).Return(nil)

	s.Require().NoError(s.svc.UploadGcode(orgID, job.ID, []byte("G28\nG1 X10"), ""))

	artifact, err := s.svc.DownloadGcode(orgID, job.ID)
	s.Require().NoError(err)
	s.Equal([]byte("G28\nG1 X10"), artifact.Data)
}

func (s *PrintJobServiceTestSuite) TestDownloadGcodeMissing() {
	orgID := uuid.New()
	job := s.readyJob(orgID)
	s.repo.EXPECT().GetByID(job.ID).Return(job, nil)

	artifact, err := s.svc.DownloadGcode(orgID, job.ID)

	s.Nil(artifact)
	s.ErrorIs(err, apperrors.ErrGcodeFileNotFound)
}

func (s *PrintJobServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	s.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := s.svc.GetByID(uuid.New(), id)

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrPrintJobNotFound)
}

func TestPrintJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PrintJobServiceTestSuite))
}
