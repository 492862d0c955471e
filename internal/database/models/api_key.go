package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApiKey is an organization-bound credential for machine clients (the
// geometry worker and the printer desktop client). The plaintext key is
// returned exactly once at creation; only its SHA-256 hash is stored.
type ApiKey struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Prefix         string     `json:"prefix" gorm:"not null;size:8"`
	KeyHash        string     `json:"-" gorm:"uniqueIndex;not null;size:64"`
	Scopes         string     `json:"scopes" gorm:"not null;size:200" validate:"required,max=200"` // comma separated
	LastUsedAt     *time.Time `json:"last_used_at,omitempty"`
}

// TableName returns the table name for ApiKey
func (ApiKey) TableName() string {
	return "api_keys"
}

// ScopeList splits the comma-separated scope string
func (k *ApiKey) ScopeList() []string {
	if k.Scopes == "" {
		return nil
	}
	parts := strings.Split(k.Scopes, ",")
	scopes := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

// HasScope reports whether the key grants the given scope
func (k *ApiKey) HasScope(scope string) bool {
	for _, s := range k.ScopeList() {
		if s == scope {
			return true
		}
	}
	return false
}
