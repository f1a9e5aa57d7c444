// Package types provides type definitions for structured data used throughout the internmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// PriorInternshipYes is the profile value that earns the prior-internship
// bonus; any other value counts as no.
const PriorInternshipYes = "yes"

// UserProfile is the profile record supplied by the upstream profile provider.
// The ranking engine treats it as read-only; absent fields are empty strings.
type UserProfile struct {
	Skills          string `json:"skills"`
	Qualification   string `json:"qualification"`
	AreaOfInterest  string `json:"area_of_interest"`
	PriorInternship string `json:"prior_internship"`
}

// UpdateProfileRequest is the request body for PUT /users/{id}/profile.
type UpdateProfileRequest struct {
	Skills          string `json:"skills" validate:"required,min=1"`
	Qualification   string `json:"qualification,omitempty"`
	AreaOfInterest  string `json:"area_of_interest,omitempty"`
	PriorInternship string `json:"prior_internship,omitempty" validate:"omitempty,oneof=yes no"`
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Profile converts the request into a UserProfile record.
func (r *UpdateProfileRequest) Profile() UserProfile {
	return UserProfile{
		Skills:          r.Skills,
		Qualification:   r.Qualification,
		AreaOfInterest:  r.AreaOfInterest,
		PriorInternship: r.PriorInternship,
	}
}
