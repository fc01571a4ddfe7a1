// Package form holds the in-memory advert form and enforces its field invariants.
package form

import (
	"github.com/jonathan/advert-generator/internal/types"
)

// State is the form state holder. Every mutator leaves the input satisfying
// "relocation is false unless the location offers relocation".
type State struct {
	input types.JobFormInput
}

// New creates a form with the default values.
func New() *State {
	return &State{input: types.DefaultJobFormInput()}
}

// FromInput replays input through the setters, so callers outside the form
// get the same auto-correction.
func FromInput(input types.JobFormInput) (*State, error) {
	s := New()
	s.SetJobTitle(input.JobTitle)
	if err := s.SetLocation(input.Location); err != nil {
		return nil, err
	}
	s.SetRelocationApplicable(input.RelocationApplicable)
	s.SetRawNotes(input.RawNotes)
	return s, nil
}

// Input returns a copy of the current input. Later mutations do not affect it,
// so it doubles as the submit-time snapshot.
func (s *State) Input() types.JobFormInput {
	return s.input
}

// SetJobTitle stores the title verbatim.
func (s *State) SetJobTitle(title string) {
	s.input.JobTitle = title
}

// SetRawNotes stores the notes verbatim.
func (s *State) SetRawNotes(notes string) {
	s.input.RawNotes = notes
}

// SetLocation changes the location. Moving to a location without relocation
// support clears the relocation flag.
func (s *State) SetLocation(loc types.Location) error {
	if !loc.Valid() {
		_, err := types.ParseLocation(string(loc))
		return err
	}
	s.input.Location = loc
	if !loc.OffersRelocation() {
		s.input.RelocationApplicable = false
	}
	return nil
}

// SetRelocationApplicable sets the relocation flag. Enabling it is ignored for
// locations that do not offer relocation.
func (s *State) SetRelocationApplicable(applicable bool) {
	s.input.RelocationApplicable = applicable && s.input.Location.OffersRelocation()
}

// ShowRelocation reports whether the relocation choice should be offered.
func (s *State) ShowRelocation() bool {
	return s.input.Location.OffersRelocation()
}

// CanSubmit reports whether the form may be submitted.
func (s *State) CanSubmit() bool {
	return CanSubmit(s.input)
}

// CanSubmit gates submission on a non-empty title and notes.
func CanSubmit(input types.JobFormInput) bool {
	return input.JobTitle != "" && input.RawNotes != ""
}
