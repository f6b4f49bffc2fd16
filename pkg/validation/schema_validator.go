package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"go-greenery-relay/pkg/models"
)

var (
	ErrMissingRecommendations    = errors.New("underserved result must carry 1 to 3 recommendations")
	ErrUnexpectedRecommendations = errors.New("adequate result must not carry recommendations")
)

// SchemaValidator checks a provider answer against the documented two-shape contract
type SchemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator registers the "location" tag used by models.Recommendation
func NewSchemaValidator() *SchemaValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		return models.Location(fl.Field().String()).Valid()
	})
	return &SchemaValidator{validate: v}
}

// Validate decodes body into models.AnalysisResult and enforces the shape rules.
// Unknown extra fields are tolerated.
func (s *SchemaValidator) Validate(body json.RawMessage) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	if err := s.validate.Struct(result); err != nil {
		return nil, fmt.Errorf("result schema: %w", err)
	}

	switch result.Status {
	case models.StatusUnderserved:
		if len(result.Recommendations) == 0 {
			return nil, ErrMissingRecommendations
		}
	case models.StatusAdequate:
		if result.Recommendations != nil {
			return nil, ErrUnexpectedRecommendations
		}
	}
	return &result, nil
}
