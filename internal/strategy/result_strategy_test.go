package strategy

import (
	"encoding/json"
	"testing"
)

func TestPassThroughStrategy_ReturnsInputUnchanged(t *testing.T) {
	s := ForMode(false)
	if s.GetStrategyName() != "pass_through" {
		t.Errorf("Expected pass_through, got %s", s.GetStrategyName())
	}

	for _, body := range []string{`{"status":"Whatever","greenery_score":42}`, `[1,2]`, `"text"`} {
		got, err := s.Apply(json.RawMessage(body))
		if err != nil {
			t.Errorf("Apply(%s): unexpected error %v", body, err)
		}
		if string(got) != body {
			t.Errorf("Apply(%s) = %s", body, got)
		}
	}
}

func TestStrictSchemaStrategy(t *testing.T) {
	s := ForMode(true)
	if s.GetStrategyName() != "strict_schema" {
		t.Errorf("Expected strict_schema, got %s", s.GetStrategyName())
	}

	valid := `{"status":"Adequate","greenery_score":7,"justification":"Tree-lined streets."}`
	got, err := s.Apply(json.RawMessage(valid))
	if err != nil {
		t.Fatalf("Expected valid result to pass, got %v", err)
	}
	if string(got) != valid {
		t.Errorf("Expected body unchanged, got %s", got)
	}

	if _, err := s.Apply(json.RawMessage(`{"status":"Adequate","greenery_score":42,"justification":"j"}`)); err == nil {
		t.Error("Expected out-of-range score to be rejected")
	}
}
