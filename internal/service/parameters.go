package service

import (
	"encoding/json"
	"fmt"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
)

// validateParameterSchema checks a template's parameter definitions for
// structural soundness: unique names, known types, and bounds that match
// the parameter type.
func validateParameterSchema(defs []models.ParameterDefinition) error {
	if len(defs) == 0 {
		return apperrors.NewValidationError("parameters", "at least one parameter is required")
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return apperrors.NewValidationError("parameters", "parameter name is required")
		}
		if seen[def.Name] {
			return apperrors.NewValidationError(def.Name, "duplicate parameter name")
		}
		seen[def.Name] = true

		if !def.Type.IsValid() {
			return apperrors.NewValidationError(def.Name, "unknown parameter type")
		}

		switch def.Type {
		case models.ParameterTypeNumber:
			if def.MinLength != nil || def.MaxLength != nil {
				return apperrors.NewValidationError(def.Name, "length bounds are not valid for number parameters")
			}
			if def.Min != nil && def.Max != nil && *def.Min > *def.Max {
				return apperrors.NewValidationError(def.Name, "min must not exceed max")
			}
		case models.ParameterTypeText:
			if def.Min != nil || def.Max != nil {
				return apperrors.NewValidationError(def.Name, "numeric bounds are not valid for text parameters")
			}
			if def.MinLength != nil && *def.MinLength < 0 {
				return apperrors.NewValidationError(def.Name, "min_length must not be negative")
			}
			if def.MinLength != nil && def.MaxLength != nil && *def.MinLength > *def.MaxLength {
				return apperrors.NewValidationError(def.Name, "min_length must not exceed max_length")
			}
		}

		if def.Default != nil {
			if err := checkParameterValue(def, def.Default); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateParameterValues checks user-supplied job parameters against a
// template's schema. Unknown keys are rejected, required parameters must be
// present, and every value must satisfy its definition's type and bounds.
func validateParameterValues(defs []models.ParameterDefinition, raw json.RawMessage) error {
	var values map[string]interface{}
	if len(raw) == 0 {
		values = map[string]interface{}{}
	} else if err := json.Unmarshal(raw, &values); err != nil {
		return apperrors.NewValidationError("parameters", "parameters must be a JSON object")
	}

	byName := make(map[string]models.ParameterDefinition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	for name := range values {
		if _, ok := byName[name]; !ok {
			return apperrors.NewValidationError(name, "unknown parameter")
		}
	}

	for _, def := range defs {
		value, present := values[def.Name]
		if !present || value == nil {
			if def.Required && def.Default == nil {
				return apperrors.NewValidationError(def.Name, "parameter is required")
			}
			continue
		}
		if err := checkParameterValue(def, value); err != nil {
			return err
		}
	}

	return nil
}

// checkParameterValue verifies a single decoded JSON value against its definition
func checkParameterValue(def models.ParameterDefinition, value interface{}) error {
	switch def.Type {
	case models.ParameterTypeNumber:
		num, ok := value.(float64)
		if !ok {
			return apperrors.NewValidationError(def.Name, "expected a number")
		}
		if def.Min != nil && num < *def.Min {
			return apperrors.NewValidationError(def.Name, fmt.Sprintf("must be at least %g", *def.Min))
		}
		if def.Max != nil && num > *def.Max {
			return apperrors.NewValidationError(def.Name, fmt.Sprintf("must be at most %g", *def.Max))
		}
	case models.ParameterTypeText:
		text, ok := value.(string)
		if !ok {
			return apperrors.NewValidationError(def.Name, "expected a string")
		}
		if def.MinLength != nil && len(text) < *def.MinLength {
			return apperrors.NewValidationError(def.Name, fmt.Sprintf("must be at least %d characters", *def.MinLength))
		}
		if def.MaxLength != nil && len(text) > *def.MaxLength {
			return apperrors.NewValidationError(def.Name, fmt.Sprintf("must be at most %d characters", *def.MaxLength))
		}
	}
	return nil
}

// applyParameterDefaults fills defaults for absent optional parameters and
// returns the normalized parameter document stored on the job.
func applyParameterDefaults(defs []models.ParameterDefinition, raw json.RawMessage) (json.RawMessage, error) {
	var values map[string]interface{}
	if len(raw) == 0 {
		values = map[string]interface{}{}
	} else if err := json.Unmarshal(raw, &values); err != nil {
		return nil, apperrors.NewValidationError("parameters", "parameters must be a JSON object")
	}

	for _, def := range defs {
		if _, present := values[def.Name]; !present && def.Default != nil {
			values[def.Name] = def.Default
		}
	}

	normalized, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize parameters: %w", err)
	}
	return normalized, nil
}
