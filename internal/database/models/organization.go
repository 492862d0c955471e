package models

// Organization represents the root entity for multi-tenancy. Every user,
// API key and job belongs to exactly one organization.
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Users       []User           `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ApiKeys     []ApiKey         `json:"api_keys,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Invitations []InvitationLink `json:"invitations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
