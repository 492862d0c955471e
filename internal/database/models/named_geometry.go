package models

import (
	"encoding/json"
)

// NamedGeometry is a geometry template: a named geometric algorithm together
// with the schema of the parameters it accepts. Jobs reference a template and
// supply concrete parameter values validated against ParameterSchema.
type NamedGeometry struct {
	BaseModel
	Name            string          `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Title           string          `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description     string          `json:"description" gorm:"type:text"`
	Version         int             `json:"version" gorm:"not null;default:1"`
	ParameterSchema json.RawMessage `json:"parameter_schema" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for NamedGeometry
func (NamedGeometry) TableName() string {
	return "named_geometries"
}

// ParameterDefinition describes a single parameter of a geometry template.
// Number parameters may carry Min/Max bounds, text parameters MinLength/MaxLength.
type ParameterDefinition struct {
	Name      string        `json:"name"`
	Label     string        `json:"label,omitempty"`
	Type      ParameterType `json:"type"`
	Required  bool          `json:"required,omitempty"`
	Min       *float64      `json:"min,omitempty"`
	Max       *float64      `json:"max,omitempty"`
	MinLength *int          `json:"min_length,omitempty"`
	MaxLength *int          `json:"max_length,omitempty"`
	Default   interface{}   `json:"default,omitempty"`
}

// Parameters decodes the stored parameter schema
func (g *NamedGeometry) Parameters() ([]ParameterDefinition, error) {
	var defs []ParameterDefinition
	if len(g.ParameterSchema) == 0 {
		return defs, nil
	}
	if err := json.Unmarshal(g.ParameterSchema, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}
