package service_test

import (
	"testing"
	"time"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/mocks"
	"splint-factory-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockInvitationRepositoryInterface
	userRepo *mocks.MockUserRepositoryInterface
	orgRepo  *mocks.MockOrganizationRepositoryInterface
	svc      *service.InvitationService
}

func (s *InvitationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockInvitationRepositoryInterface(s.ctrl)
	s.userRepo = mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.orgRepo = mocks.NewMockOrganizationRepositoryInterface(s.ctrl)
	s.svc = service.NewInvitationService(s.repo, s.userRepo, s.orgRepo, validator.New(), 72*time.Hour)
}

func (s *InvitationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InvitationServiceTestSuite) pendingInvitation(orgID uuid.UUID) *models.InvitationLink {
	return &models.InvitationLink{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Email:          "pt@clinic.example",
		Role:           models.RoleMember,
		Token:          "tok-pending",
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		Organization: &models.Organization{
			BaseModel: models.BaseModel{ID: orgID},
			Name:      "Hand Therapy Clinic",
		},
	}
}

func (s *InvitationServiceTestSuite) TestCreateIssuesToken() {
	orgID := uuid.New()
	adminID := uuid.New()
	s.orgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{
		BaseModel: models.BaseModel{ID: orgID},
	}, nil)
	s.userRepo.EXPECT().GetByEmail("pt@clinic.example").Return(nil, gorm.ErrRecordNotFound)

	var stored *models.InvitationLink
	s.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(invitation *models.InvitationLink) error {
		stored = invitation
		return nil
	})

	resp, err := s.svc.Create(orgID, &adminID, &service.CreateInvitationRequest{
		Email: "pt@clinic.example",
		Role:  models.RoleMember,
	})

	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(resp.Token, stored.Token)
	s.WithinDuration(time.Now().Add(72*time.Hour), stored.ExpiresAt, time.Minute)
}

func (s *InvitationServiceTestSuite) TestCreateRejectsSystemAdminRole() {
	resp, err := s.svc.Create(uuid.New(), nil, &service.CreateInvitationRequest{
		Email: "pt@clinic.example",
		Role:  models.RoleSystemAdmin,
	})

	s.Nil(resp)
	s.Require().Error(err)
	s.Contains(err.Error(), "ORG_ADMIN or MEMBER")
}

func (s *InvitationServiceTestSuite) TestCreateRejectsExistingUser() {
	orgID := uuid.New()
	s.orgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{
		BaseModel: models.BaseModel{ID: orgID},
	}, nil)
	s.userRepo.EXPECT().GetByEmail("pt@clinic.example").Return(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "pt@clinic.example",
	}, nil)

	resp, err := s.svc.Create(orgID, nil, &service.CreateInvitationRequest{
		Email: "pt@clinic.example",
		Role:  models.RoleMember,
	})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrUserExists)
}

func (s *InvitationServiceTestSuite) TestPreview() {
	invitation := s.pendingInvitation(uuid.New())
	s.repo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil)

	resp, err := s.svc.Preview(invitation.Token)

	s.Require().NoError(err)
	s.Equal("Hand Therapy Clinic", resp.OrganizationName)
	s.Equal("pt@clinic.example", resp.Email)
	s.Equal(models.RoleMember, resp.Role)
}

func (s *InvitationServiceTestSuite) TestPreviewExpired() {
	invitation := s.pendingInvitation(uuid.New())
	invitation.ExpiresAt = time.Now().Add(-time.Hour)
	s.repo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil)

	resp, err := s.svc.Preview(invitation.Token)

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrInvitationExpired)
}

func (s *InvitationServiceTestSuite) TestPreviewUsed() {
	invitation := s.pendingInvitation(uuid.New())
	used := time.Now().Add(-time.Hour)
	invitation.UsedAt = &used
	s.repo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil)

	resp, err := s.svc.Preview(invitation.Token)

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrInvitationUsed)
}

func (s *InvitationServiceTestSuite) TestPreviewUnknownToken() {
	s.repo.EXPECT().GetByToken("tok-missing").Return(nil, gorm.ErrRecordNotFound)

	resp, err := s.svc.Preview("tok-missing")

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrInvitationNotFound)
}

func (s *InvitationServiceTestSuite) TestAcceptCreatesUserAndBurnsToken() {
	orgID := uuid.New()
	invitation := s.pendingInvitation(orgID)
	s.repo.EXPECT().GetByToken(invitation.Token).Return(invitation, nil)
	s.userRepo.EXPECT().GetByEmail(invitation.Email).Return(nil, gorm.ErrRecordNotFound)

	var createdUser *models.User
	s.userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		createdUser = user
		return nil
	})

	var updatedInvitation *models.InvitationLink
	s.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(invitation *models.InvitationLink) error {
		updatedInvitation = invitation
		return nil
	})

	resp, err := s.svc.Accept(invitation.Token, &service.AcceptInvitationRequest{
		FirstName: "Dana",
		LastName:  "Levy",
		Password:  "correct-horse-battery",
	})

	s.Require().NoError(err)
	s.Equal("pt@clinic.example", resp.Email)
	s.Equal(models.RoleMember, resp.Role)
	s.Require().NotNil(resp.OrganizationID)
	s.Equal(orgID, *resp.OrganizationID)

	s.NoError(bcrypt.CompareHashAndPassword([]byte(createdUser.PasswordHash), []byte("correct-horse-battery")))
	s.NotNil(updatedInvitation.UsedAt)
}

func (s *InvitationServiceTestSuite) TestAcceptWeakPassword() {
	resp, err := s.svc.Accept("tok-pending", &service.AcceptInvitationRequest{
		FirstName: "Dana",
		LastName:  "Levy",
		Password:  "short",
	})

	s.Nil(resp)
	s.Error(err)
}

func (s *InvitationServiceTestSuite) TestDeleteHidesOtherOrganizations() {
	invitation := s.pendingInvitation(uuid.New())
	s.repo.EXPECT().GetByID(invitation.ID).Return(invitation, nil)

	err := s.svc.Delete(uuid.New(), invitation.ID)

	s.ErrorIs(err, apperrors.ErrInvitationNotFound)
}

func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
