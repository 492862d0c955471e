package service

import (
	"encoding/json"
	"testing"

	"splint-factory-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func wristSchema() []models.ParameterDefinition {
	return []models.ParameterDefinition{
		{
			Name:     "wrist_circumference_mm",
			Type:     models.ParameterTypeNumber,
			Required: true,
			Min:      floatPtr(100),
			Max:      floatPtr(300),
		},
		{
			Name:      "patient_label",
			Type:      models.ParameterTypeText,
			MaxLength: intPtr(40),
			Default:   "unlabeled",
		},
	}
}

func TestValidateParameterSchema(t *testing.T) {
	t.Run("valid schema", func(t *testing.T) {
		assert.NoError(t, validateParameterSchema(wristSchema()))
	})

	t.Run("empty schema", func(t *testing.T) {
		assert.Error(t, validateParameterSchema(nil))
	})

	t.Run("duplicate names", func(t *testing.T) {
		defs := []models.ParameterDefinition{
			{Name: "size", Type: models.ParameterTypeNumber},
			{Name: "size", Type: models.ParameterTypeNumber},
		}
		err := validateParameterSchema(defs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("unknown type", func(t *testing.T) {
		defs := []models.ParameterDefinition{
			{Name: "size", Type: models.ParameterType("boolean")},
		}
		assert.Error(t, validateParameterSchema(defs))
	})

	t.Run("length bounds on number", func(t *testing.T) {
		defs := []models.ParameterDefinition{
			{Name: "size", Type: models.ParameterTypeNumber, MaxLength: intPtr(10)},
		}
		assert.Error(t, validateParameterSchema(defs))
	})

	t.Run("numeric bounds on text", func(t *testing.T) {
		defs := []models.ParameterDefinition{
			{Name: "label", Type: models.ParameterTypeText, Min: floatPtr(1)},
		}
		assert.Error(t, validateParameterSchema(defs))
	})

	t.Run("min above max", func(t *testing.T) {
		defs := []models.ParameterDefinition{
			{Name: "size", Type: models.ParameterTypeNumber, Min: floatPtr(10), Max: floatPtr(5)},
		}
		assert.Error(t, validateParameterSchema(defs))
	})

	t.Run("default violating bounds", func(t *testing.T) {
		defs := []models.ParameterDefinition{
			{Name: "size", Type: models.ParameterTypeNumber, Min: floatPtr(10), Default: float64(5)},
		}
		assert.Error(t, validateParameterSchema(defs))
	})
}

func TestValidateParameterValues(t *testing.T) {
	defs := wristSchema()

	t.Run("valid values", func(t *testing.T) {
		raw := json.RawMessage(`{"wrist_circumference_mm": 180, "patient_label": "left wrist"}`)
		assert.NoError(t, validateParameterValues(defs, raw))
	})

	t.Run("optional with default may be absent", func(t *testing.T) {
		raw := json.RawMessage(`{"wrist_circumference_mm": 180}`)
		assert.NoError(t, validateParameterValues(defs, raw))
	})

	t.Run("required missing", func(t *testing.T) {
		raw := json.RawMessage(`{"patient_label": "x"}`)
		err := validateParameterValues(defs, raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("unknown key", func(t *testing.T) {
		raw := json.RawMessage(`{"wrist_circumference_mm": 180, "color": "red"}`)
		err := validateParameterValues(defs, raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown parameter")
	})

	t.Run("not an object", func(t *testing.T) {
		raw := json.RawMessage(`[1, 2]`)
		assert.Error(t, validateParameterValues(defs, raw))
	})

	t.Run("wrong type", func(t *testing.T) {
		raw := json.RawMessage(`{"wrist_circumference_mm": "wide"}`)
		err := validateParameterValues(defs, raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a number")
	})

	t.Run("below min", func(t *testing.T) {
		raw := json.RawMessage(`{"wrist_circumference_mm": 50}`)
		assert.Error(t, validateParameterValues(defs, raw))
	})

	t.Run("above max", func(t *testing.T) {
		raw := json.RawMessage(`{"wrist_circumference_mm": 400}`)
		assert.Error(t, validateParameterValues(defs, raw))
	})

	t.Run("text too long", func(t *testing.T) {
		raw := json.RawMessage(`{"wrist_circumference_mm": 180, "patient_label": "` +
			"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" + `"}`)
		assert.Error(t, validateParameterValues(defs, raw))
	})
}

func TestApplyParameterDefaults(t *testing.T) {
	defs := wristSchema()

	t.Run("fills absent defaults", func(t *testing.T) {
		normalized, err := applyParameterDefaults(defs, json.RawMessage(`{"wrist_circumference_mm": 180}`))
		require.NoError(t, err)

		var values map[string]interface{}
		require.NoError(t, json.Unmarshal(normalized, &values))
		assert.Equal(t, float64(180), values["wrist_circumference_mm"])
		assert.Equal(t, "unlabeled", values["patient_label"])
	})

	t.Run("keeps supplied values", func(t *testing.T) {
		normalized, err := applyParameterDefaults(defs, json.RawMessage(`{"wrist_circumference_mm": 180, "patient_label": "left"}`))
		require.NoError(t, err)

		var values map[string]interface{}
		require.NoError(t, json.Unmarshal(normalized, &values))
		assert.Equal(t, "left", values["patient_label"])
	})

	t.Run("empty input becomes an object", func(t *testing.T) {
		normalized, err := applyParameterDefaults(defs, nil)
		require.NoError(t, err)

		var values map[string]interface{}
		require.NoError(t, json.Unmarshal(normalized, &values))
		assert.Equal(t, "unlabeled", values["patient_label"])
	})
}
