package models

import "encoding/json"

// Status is the top-level verdict returned by the inference provider
type Status string

const (
	StatusUnderserved Status = "Underserved"
	StatusAdequate    Status = "Adequate"
)

// Location is the approximate position of a recommendation on the analyzed image
type Location string

const (
	LocationTopLeft      Location = "top-left"
	LocationTopCenter    Location = "top-center"
	LocationTopRight     Location = "top-right"
	LocationCenterLeft   Location = "center-left"
	LocationCenter       Location = "center"
	LocationCenterRight  Location = "center-right"
	LocationBottomLeft   Location = "bottom-left"
	LocationBottomCenter Location = "bottom-center"
	LocationBottomRight  Location = "bottom-right"
)

// Locations lists every label the provider may use for location_on_image
var Locations = []Location{
	LocationTopLeft, LocationTopCenter, LocationTopRight,
	LocationCenterLeft, LocationCenter, LocationCenterRight,
	LocationBottomLeft, LocationBottomCenter, LocationBottomRight,
}

// Valid reports whether l is one of the nine grid labels
func (l Location) Valid() bool {
	for _, known := range Locations {
		if l == known {
			return true
		}
	}
	return false
}

// AnalysisResult is the typed form of the provider's greenery assessment.
// Recommendations is only set when Status is Underserved.
type AnalysisResult struct {
	Status          Status           `json:"status" validate:"required,oneof=Underserved Adequate"`
	GreeneryScore   int              `json:"greenery_score" validate:"min=1,max=10"`
	Justification   string           `json:"justification" validate:"required"`
	Recommendations []Recommendation `json:"recommendations,omitempty" validate:"omitempty,max=3,dive"`
}

// Recommendation is a candidate site for a new green space
type Recommendation struct {
	Name            string   `json:"name" validate:"required"`
	Reason          string   `json:"reason" validate:"required"`
	LocationOnImage Location `json:"location_on_image" validate:"required,location"`
}

// ImagePayload holds downloaded image bytes for the lifetime of one request
type ImagePayload struct {
	Data     []byte
	MimeType string
}

// Analysis is what the pipeline hands back to the transport layer: the provider's
// JSON exactly as parsed, ready to be written as the response body.
type Analysis struct {
	Body json.RawMessage
}
