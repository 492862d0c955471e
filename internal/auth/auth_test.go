package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"splint-factory-backend/internal/config"
	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func newTestService(t *testing.T, users ...*models.User) (*AuthService, *stubUserRepo) {
	t.Helper()
	repo := &stubUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	svc, err := NewAuthService(&config.Config{
		JWTSecret:            "test-secret",
		AccessTokenTTLMin:    60,
		RefreshTokenTTLHours: 24,
	}, repo)
	require.NoError(t, err)
	return svc, repo
}

func testUser(t *testing.T, email, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	orgID := uuid.New()
	return &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: &orgID,
		FirstName:      "Nora",
		LastName:       "Vance",
		Email:          email,
		PasswordHash:   hash,
		Role:           role,
	}
}

func TestLoginIssuesValidTokenPair(t *testing.T) {
	user := testUser(t, "nora@clinic.example", "correct-horse-battery", models.RoleOrgAdmin)
	svc, _ := newTestService(t, user)

	resp, err := svc.Login(user.Email, "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.Email, resp.Profile.Email)
	assert.Equal(t, "Nora Vance", resp.Profile.DisplayName)

	claims, err := svc.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(models.RoleOrgAdmin), claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.OrganizationID.String(), claims.OrganizationID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	user := testUser(t, "nora@clinic.example", "correct-horse-battery", models.RoleMember)
	svc, _ := newTestService(t, user)

	resp, err := svc.Login(user.Email, "wrong-password")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login("ghost@clinic.example", "whatever")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	user := testUser(t, "nora@clinic.example", "correct-horse-battery", models.RoleMember)
	svc, _ := newTestService(t, user)

	first, err := svc.Login(user.Email, "correct-horse-battery")
	require.NoError(t, err)

	second, err := svc.Refresh(first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The old refresh token must be dead after rotation.
	_, err = svc.Refresh(first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	user := testUser(t, "nora@clinic.example", "correct-horse-battery", models.RoleMember)
	svc, _ := newTestService(t, user)

	resp, err := svc.Login(user.Email, "correct-horse-battery")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(48 * time.Hour) }

	_, err = svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	user := testUser(t, "nora@clinic.example", "correct-horse-battery", models.RoleMember)
	svc, _ := newTestService(t, user)

	resp, err := svc.Login(user.Email, "correct-horse-battery")
	require.NoError(t, err)

	svc.Logout(resp.RefreshToken)

	_, err = svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ValidateJWT("not-a-jwt")
	assert.Error(t, err)
}

type stubKeyAuth struct {
	key *models.ApiKey
	err error
}

func (s *stubKeyAuth) Authenticate(rawKey string) (*models.ApiKey, error) {
	return s.key, s.err
}

func setupMiddlewareRouter(t *testing.T, svc *AuthService, keys ApiKeyAuthenticator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(svc, keys)

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	router.GET("/admin", m.RequireAuth(), m.RequireRole(models.RoleSystemAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.POST("/machine", m.RequireAPIKey(models.ScopePrintReport), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAuthAcceptsBearerAndQueryToken(t *testing.T) {
	user := testUser(t, "nora@clinic.example", "correct-horse-battery", models.RoleMember)
	svc, _ := newTestService(t, user)
	resp, err := svc.Login(user.Email, "correct-horse-battery")
	require.NoError(t, err)

	router := setupMiddlewareRouter(t, svc, &stubKeyAuth{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// EventSource cannot set headers; the token query parameter must work too.
	req = httptest.NewRequest("GET", "/protected?token="+resp.AccessToken, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsMissingAndMalformedTokens(t *testing.T) {
	svc, _ := newTestService(t)
	router := setupMiddlewareRouter(t, svc, &stubKeyAuth{})

	req := httptest.NewRequest("GET", "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleForbidsLesserRoles(t *testing.T) {
	member := testUser(t, "member@clinic.example", "pw-member-123", models.RoleMember)
	admin := testUser(t, "root@splint.example", "pw-admin-123", models.RoleSystemAdmin)
	svc, _ := newTestService(t, member, admin)
	router := setupMiddlewareRouter(t, svc, &stubKeyAuth{})

	memberResp, err := svc.Login(member.Email, "pw-member-123")
	require.NoError(t, err)
	adminResp, err := svc.Login(admin.Email, "pw-admin-123")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+memberResp.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminResp.AccessToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAPIKeyEnforcesScope(t *testing.T) {
	svc, _ := newTestService(t)

	reporter := &models.ApiKey{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Name:           "printer-floor-1",
		Scopes:         models.ScopePrintReport,
	}

	router := setupMiddlewareRouter(t, svc, &stubKeyAuth{key: reporter})
	req := httptest.NewRequest("POST", "/machine", nil)
	req.Header.Set("X-API-Key", "sfk_anything")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Same key without the scope is forbidden.
	reader := &models.ApiKey{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: uuid.New(),
		Name:           "dashboard",
		Scopes:         models.ScopePrintRead,
	}
	router = setupMiddlewareRouter(t, svc, &stubKeyAuth{key: reader})
	req = httptest.NewRequest("POST", "/machine", nil)
	req.Header.Set("X-API-Key", "sfk_anything")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Missing header is unauthorized.
	req = httptest.NewRequest("POST", "/machine", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(32)
	require.NoError(t, err)
	// 32 bytes of entropy, unpadded base64url.
	assert.Len(t, token, 43)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	again, err := GenerateToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, again)
}
