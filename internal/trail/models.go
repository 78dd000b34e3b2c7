package trail

import (
	"errors"
	"strings"
)

// Trail is a catalogue record for a single walking trail. JSON field names
// match the published wire format, which capitalises them.
type Trail struct {
	TrailID     string   `json:"TrailID"`
	Name        string   `json:"Name"`
	Description *string  `json:"Description"`
	Difficulty  *string  `json:"Difficulty"`
	Length      *float64 `json:"Length"`
	TrailType   *string  `json:"TrailType"`
	Duration    *string  `json:"Duration"`
	OwnerEmail  string   `json:"OwnerEmail"`
	Latitude    *float64 `json:"Latitude"`
	Longitude   *float64 `json:"Longitude"`
}

// CreateTrailInput holds the fields for a new trail. All fields, including
// the primary key, are client-supplied and stored verbatim.
type CreateTrailInput struct {
	TrailID     string   `json:"TrailID"`
	Name        string   `json:"Name"`
	Description *string  `json:"Description"`
	Difficulty  *string  `json:"Difficulty"`
	Length      *float64 `json:"Length"`
	TrailType   *string  `json:"TrailType"`
	Duration    *string  `json:"Duration"`
	OwnerEmail  string   `json:"OwnerEmail"`
	Latitude    *float64 `json:"Latitude"`
	Longitude   *float64 `json:"Longitude"`
}

// UpdateTrailInput is the allow-list of mutable fields for a partial update.
// The primary key is deliberately absent: it cannot be changed after create.
// Only non-nil fields are applied; unknown JSON keys are ignored on decode.
type UpdateTrailInput struct {
	Name        *string  `json:"Name"`
	Description *string  `json:"Description"`
	Difficulty  *string  `json:"Difficulty"`
	Length      *float64 `json:"Length"`
	TrailType   *string  `json:"TrailType"`
	Duration    *string  `json:"Duration"`
	OwnerEmail  *string  `json:"OwnerEmail"`
	Latitude    *float64 `json:"Latitude"`
	Longitude   *float64 `json:"Longitude"`
}

// Validation errors mirror the storage layer's NOT NULL constraints.
var (
	ErrTrailIDRequired    = errors.New("TrailID is required")
	ErrNameRequired       = errors.New("Name is required")
	ErrOwnerEmailRequired = errors.New("OwnerEmail is required")
)

// Validate checks the constraints the trail table would itself enforce.
func (in CreateTrailInput) Validate() error {
	if strings.TrimSpace(in.TrailID) == "" {
		return ErrTrailIDRequired
	}
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(in.OwnerEmail) == "" {
		return ErrOwnerEmailRequired
	}
	return nil
}

// IsValidationError reports whether err is one of the create-input
// validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTrailIDRequired) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrOwnerEmailRequired)
}
