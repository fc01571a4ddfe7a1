// Package types provides type definitions for the data exchanged between the form, the
// prompt builder and the generation client.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Location is the work location a job advert is written for
type Location string

// Supported locations, in the order the form lists them
const (
	LocationBudapest Location = "Budapest"
	LocationDenver   Location = "Denver"
	LocationRemote   Location = "Remote"
)

// DefaultLocation is preselected when the form loads
const DefaultLocation = LocationBudapest

// Locations returns every supported location in display order.
func Locations() []Location {
	return []Location{LocationBudapest, LocationDenver, LocationRemote}
}

// ParseLocation converts a raw form value into a Location.
func ParseLocation(s string) (Location, error) {
	loc := Location(s)
	if !loc.Valid() {
		return "", fmt.Errorf("unknown location %q", s)
	}
	return loc, nil
}

// Valid reports whether l is one of the supported locations.
func (l Location) Valid() bool {
	switch l {
	case LocationBudapest, LocationDenver, LocationRemote:
		return true
	default:
		return false
	}
}

// OffersRelocation reports whether relocation support can apply to the location.
// Only on-site hubs offer it.
func (l Location) OffersRelocation() bool {
	return l == LocationBudapest || l == LocationDenver
}

func (l Location) String() string {
	return string(l)
}

// Field limits, counted in characters. The job form schema carries the same values.
const (
	MaxJobTitleLength = 200
	MaxRawNotesLength = 20000
)

// JobFormInput holds everything the user enters on the advert form
type JobFormInput struct {
	JobTitle             string   `json:"job_title" validate:"required,max=200"`
	Location             Location `json:"location" validate:"required,oneof=Budapest Denver Remote"`
	RelocationApplicable bool     `json:"relocation_applicable"`
	RawNotes             string   `json:"raw_notes" validate:"required,max=20000"`
}

// DefaultJobFormInput returns the input the form starts with.
func DefaultJobFormInput() JobFormInput {
	return JobFormInput{
		Location: DefaultLocation,
	}
}

// Validate validates the JobFormInput using the validator. Field errors are
// reported under their JSON names.
func (i *JobFormInput) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return validate.Struct(i)
}

// RelocationFlag renders the relocation choice the way the prompt expects it.
func (i JobFormInput) RelocationFlag() string {
	if i.RelocationApplicable {
		return "YES"
	}
	return "NO"
}
