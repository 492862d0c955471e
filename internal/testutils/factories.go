package testutils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Clinic " + uuid.New().String()[:8],
		Description: "A test organization for testing purposes",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password hash matches
// no real password; use WithPasswordHash for login flows.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	orgID := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: &orgID,
		FirstName:      "Dana",
		LastName:       "Klein",
		Email:          "dana." + id.String()[:8] + "@test.com",
		PasswordHash:   "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
		Role:           models.RoleMember,
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	if role == models.RoleSystemAdmin {
		user.OrganizationID = nil
	}
	return user
}

// WithPasswordHash sets a bcrypt hash for the user
func (f *UserFactory) WithPasswordHash(hash string) *models.User {
	user := f.Create()
	user.PasswordHash = hash
	return user
}

// ApiKeyFactory provides methods to create test ApiKey data
type ApiKeyFactory struct{}

// NewApiKeyFactory creates a new ApiKeyFactory
func NewApiKeyFactory() *ApiKeyFactory {
	return &ApiKeyFactory{}
}

// Create creates a test ApiKey bound to a fresh plaintext key. Use RawKeyFor
// to recover the plaintext that hashes to the stored KeyHash.
func (f *ApiKeyFactory) Create() *models.ApiKey {
	raw := "sfk_" + uuid.New().String()
	return &models.ApiKey{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "test-key",
		Prefix:         raw[:8],
		KeyHash:        HashRawKey(raw),
		Scopes:         models.ScopeGeometryRead + "," + models.ScopeGeometryProcess,
	}
}

// WithOrganization sets the organization ID for the key
func (f *ApiKeyFactory) WithOrganization(orgID uuid.UUID) *models.ApiKey {
	key := f.Create()
	key.OrganizationID = orgID
	return key
}

// WithRawKey binds the stored hash to a known plaintext key
func (f *ApiKeyFactory) WithRawKey(raw string) *models.ApiKey {
	key := f.Create()
	if len(raw) >= 8 {
		key.Prefix = raw[:8]
	} else {
		key.Prefix = raw
	}
	key.KeyHash = HashRawKey(raw)
	return key
}

// WithScopes sets the comma-separated scope string
func (f *ApiKeyFactory) WithScopes(scopes string) *models.ApiKey {
	key := f.Create()
	key.Scopes = scopes
	return key
}

// HashRawKey mirrors the production key hashing for test fixtures
func HashRawKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// NamedGeometryFactory provides methods to create test NamedGeometry data
type NamedGeometryFactory struct{}

// NewNamedGeometryFactory creates a new NamedGeometryFactory
func NewNamedGeometryFactory() *NamedGeometryFactory {
	return &NamedGeometryFactory{}
}

// Create creates a test geometry template with a number and a text parameter
func (f *NamedGeometryFactory) Create() *models.NamedGeometry {
	schema, _ := json.Marshal([]models.ParameterDefinition{
		{
			Name:     "wrist_circumference_mm",
			Label:    "Wrist circumference (mm)",
			Type:     models.ParameterTypeNumber,
			Required: true,
			Min:      float64Ptr(100),
			Max:      float64Ptr(300),
		},
		{
			Name:      "patient_label",
			Label:     "Patient label",
			Type:      models.ParameterTypeText,
			MaxLength: intPtr(40),
		},
	})
	return &models.NamedGeometry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "wrist-splint-" + uuid.New().String()[:8],
		Title:           "Wrist Splint",
		Description:     "A test geometry template",
		Version:         1,
		ParameterSchema: schema,
	}
}

// WithName sets a custom name for the geometry template
func (f *NamedGeometryFactory) WithName(name string) *models.NamedGeometry {
	geometry := f.Create()
	geometry.Name = name
	return geometry
}

// WithSchema sets a custom parameter schema
func (f *NamedGeometryFactory) WithSchema(defs []models.ParameterDefinition) *models.NamedGeometry {
	geometry := f.Create()
	schema, _ := json.Marshal(defs)
	geometry.ParameterSchema = schema
	return geometry
}

// GeometryJobFactory provides methods to create test GeometryJob data
type GeometryJobFactory struct{}

// NewGeometryJobFactory creates a new GeometryJobFactory
func NewGeometryJobFactory() *GeometryJobFactory {
	return &GeometryJobFactory{}
}

// Create creates a pending test GeometryJob with default values
func (f *GeometryJobFactory) Create() *models.GeometryJob {
	params, _ := json.Marshal(map[string]interface{}{
		"wrist_circumference_mm": 180,
	})
	return &models.GeometryJob{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:  uuid.New(),
		NamedGeometryID: uuid.New(),
		Label:           "test job",
		Parameters:      params,
		Status:          models.GeometryJobPending,
	}
}

// WithOrganization sets the organization ID for the job
func (f *GeometryJobFactory) WithOrganization(orgID uuid.UUID) *models.GeometryJob {
	job := f.Create()
	job.OrganizationID = orgID
	return job
}

// WithGeometry sets the template ID for the job
func (f *GeometryJobFactory) WithGeometry(geometryID uuid.UUID) *models.GeometryJob {
	job := f.Create()
	job.NamedGeometryID = geometryID
	return job
}

// WithStatus sets the job status, stamping the matching timestamps
func (f *GeometryJobFactory) WithStatus(status models.GeometryJobStatus) *models.GeometryJob {
	job := f.Create()
	job.Status = status
	now := time.Now()
	switch status {
	case models.GeometryJobProcessing:
		job.StartedAt = &now
	case models.GeometryJobCompleted:
		job.StartedAt = &now
		job.CompletedAt = &now
		job.ModelFile = []byte("3mf-bytes")
	case models.GeometryJobFailed:
		job.StartedAt = &now
		job.CompletedAt = &now
		job.ErrorMessage = "solver did not converge"
	}
	return job
}

// PrintJobFactory provides methods to create test PrintJob data
type PrintJobFactory struct{}

// NewPrintJobFactory creates a new PrintJobFactory
func NewPrintJobFactory() *PrintJobFactory {
	return &PrintJobFactory{}
}

// Create creates a ready (unstarted) test PrintJob
func (f *PrintJobFactory) Create() *models.PrintJob {
	return &models.PrintJob{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GeometryJobID:  uuid.New(),
		OrganizationID: uuid.New(),
		PrinterName:    "prusa-mk4",
	}
}

// WithOrganization sets the organization ID for the print job
func (f *PrintJobFactory) WithOrganization(orgID uuid.UUID) *models.PrintJob {
	job := f.Create()
	job.OrganizationID = orgID
	return job
}

// WithGeometryJob sets the geometry job ID for the print job
func (f *PrintJobFactory) WithGeometryJob(geometryJobID uuid.UUID) *models.PrintJob {
	job := f.Create()
	job.GeometryJobID = geometryJobID
	return job
}

// Started creates a print job mid-print at the given progress
func (f *PrintJobFactory) Started(progress int) *models.PrintJob {
	job := f.Create()
	now := time.Now()
	job.PrintStartedTime = &now
	job.Progress = progress
	job.ProgressLastReportTime = &now
	return job
}

// Completed creates a finished print job with the given outcome
func (f *PrintJobFactory) Completed(successful bool) *models.PrintJob {
	job := f.Started(100)
	now := time.Now()
	job.PrintCompletedTime = &now
	job.PrintSuccessful = &successful
	return job
}

// InvitationFactory provides methods to create test InvitationLink data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a usable test invitation expiring in 7 days
func (f *InvitationFactory) Create() *models.InvitationLink {
	id := uuid.New()
	return &models.InvitationLink{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Email:          "invitee." + id.String()[:8] + "@test.com",
		Role:           models.RoleMember,
		Token:          uuid.New().String() + uuid.New().String()[:28],
		ExpiresAt:      time.Now().Add(7 * 24 * time.Hour),
	}
}

// WithOrganization sets the organization ID for the invitation
func (f *InvitationFactory) WithOrganization(orgID uuid.UUID) *models.InvitationLink {
	invitation := f.Create()
	invitation.OrganizationID = orgID
	return invitation
}

// Expired creates an invitation whose expiry is in the past
func (f *InvitationFactory) Expired() *models.InvitationLink {
	invitation := f.Create()
	invitation.ExpiresAt = time.Now().Add(-time.Hour)
	return invitation
}

// Used creates an invitation that has already been accepted
func (f *InvitationFactory) Used() *models.InvitationLink {
	invitation := f.Create()
	usedAt := time.Now().Add(-time.Hour)
	invitation.UsedAt = &usedAt
	return invitation
}

// LinkFactory provides methods to create test Link data
type LinkFactory struct{}

// NewLinkFactory creates a new LinkFactory
func NewLinkFactory() *LinkFactory {
	return &LinkFactory{}
}

// Create creates a test shortlink with default values
func (f *LinkFactory) Create() *models.Link {
	return &models.Link{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Slug:      "s-" + uuid.New().String()[:8],
		TargetURL: "https://example.com/docs/fitting-guide",
	}
}

// WithSlug sets a custom slug for the link
func (f *LinkFactory) WithSlug(slug string) *models.Link {
	link := f.Create()
	link.Slug = slug
	return link
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization  *OrganizationFactory
	User          *UserFactory
	ApiKey        *ApiKeyFactory
	NamedGeometry *NamedGeometryFactory
	GeometryJob   *GeometryJobFactory
	PrintJob      *PrintJobFactory
	Invitation    *InvitationFactory
	Link          *LinkFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:  NewOrganizationFactory(),
		User:          NewUserFactory(),
		ApiKey:        NewApiKeyFactory(),
		NamedGeometry: NewNamedGeometryFactory(),
		GeometryJob:   NewGeometryJobFactory(),
		PrintJob:      NewPrintJobFactory(),
		Invitation:    NewInvitationFactory(),
		Link:          NewLinkFactory(),
	}
}

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
