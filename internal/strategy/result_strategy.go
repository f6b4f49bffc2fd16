package strategy

import (
	"encoding/json"

	"go-greenery-relay/pkg/validation"
)

// ResultStrategy decides what happens to a parsed provider answer before it is returned
type ResultStrategy interface {
	Apply(body json.RawMessage) (json.RawMessage, error)
	GetStrategyName() string
}

// PassThroughStrategy returns whatever JSON the provider produced
type PassThroughStrategy struct{}

// NewPassThroughStrategy creates the default strategy
func NewPassThroughStrategy() ResultStrategy {
	return PassThroughStrategy{}
}

func (PassThroughStrategy) Apply(body json.RawMessage) (json.RawMessage, error) {
	return body, nil
}

func (PassThroughStrategy) GetStrategyName() string {
	return "pass_through"
}

// StrictSchemaStrategy rejects answers that break the documented result schema.
// Accepted answers are still returned byte-for-byte as parsed.
type StrictSchemaStrategy struct {
	validator *validation.SchemaValidator
}

// NewStrictSchemaStrategy creates a strategy backed by validator
func NewStrictSchemaStrategy(validator *validation.SchemaValidator) ResultStrategy {
	return &StrictSchemaStrategy{validator: validator}
}

func (s *StrictSchemaStrategy) Apply(body json.RawMessage) (json.RawMessage, error) {
	if _, err := s.validator.Validate(body); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *StrictSchemaStrategy) GetStrategyName() string {
	return "strict_schema"
}

// ForMode picks the strict strategy when strict is set, pass-through otherwise
func ForMode(strict bool) ResultStrategy {
	if strict {
		return NewStrictSchemaStrategy(validation.NewSchemaValidator())
	}
	return NewPassThroughStrategy()
}
