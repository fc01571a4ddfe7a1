package form

import (
	"testing"

	"github.com/jonathan/advert-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	input := s.Input()

	assert.Equal(t, types.LocationBudapest, input.Location)
	assert.False(t, input.RelocationApplicable)
	assert.Empty(t, input.JobTitle)
	assert.Empty(t, input.RawNotes)
	assert.True(t, s.ShowRelocation())
	assert.False(t, s.CanSubmit())
}

func TestSetLocation_RemoteClearsRelocation(t *testing.T) {
	s := New()
	s.SetRelocationApplicable(true)
	require.True(t, s.Input().RelocationApplicable)

	require.NoError(t, s.SetLocation(types.LocationRemote))

	assert.False(t, s.Input().RelocationApplicable)
	assert.False(t, s.ShowRelocation())
}

func TestSetLocation_OnSiteKeepsRelocation(t *testing.T) {
	s := New()
	s.SetRelocationApplicable(true)

	require.NoError(t, s.SetLocation(types.LocationDenver))

	assert.True(t, s.Input().RelocationApplicable)
}

func TestSetLocation_Unknown(t *testing.T) {
	s := New()
	s.SetRelocationApplicable(true)

	err := s.SetLocation("Atlantis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown location")
	assert.Equal(t, types.LocationBudapest, s.Input().Location)
	assert.True(t, s.Input().RelocationApplicable)
}

func TestSetRelocationApplicable_IgnoredForRemote(t *testing.T) {
	s := New()
	require.NoError(t, s.SetLocation(types.LocationRemote))

	s.SetRelocationApplicable(true)

	assert.False(t, s.Input().RelocationApplicable)
}

// Every sequence of mutations keeps relocation off while the location is Remote.
func TestRemoteRelocationInvariant_AllMutationSequences(t *testing.T) {
	mutations := map[string]func(*State){
		"title":          func(s *State) { s.SetJobTitle("Engineer") },
		"notes":          func(s *State) { s.SetRawNotes("notes") },
		"budapest":       func(s *State) { _ = s.SetLocation(types.LocationBudapest) },
		"denver":         func(s *State) { _ = s.SetLocation(types.LocationDenver) },
		"remote":         func(s *State) { _ = s.SetLocation(types.LocationRemote) },
		"bad-location":   func(s *State) { _ = s.SetLocation("Nowhere") },
		"relocation-on":  func(s *State) { s.SetRelocationApplicable(true) },
		"relocation-off": func(s *State) { s.SetRelocationApplicable(false) },
	}
	names := make([]string, 0, len(mutations))
	for name := range mutations {
		names = append(names, name)
	}

	// all sequences of length 3
	for _, a := range names {
		for _, b := range names {
			for _, c := range names {
				s := New()
				for _, step := range []string{a, b, c} {
					mutations[step](s)
					input := s.Input()
					if input.Location == types.LocationRemote {
						require.False(t, input.RelocationApplicable, "sequence %s,%s,%s", a, b, c)
					}
				}
			}
		}
	}
}

func TestFromInput_RemoteForcedFalse(t *testing.T) {
	s, err := FromInput(types.JobFormInput{
		JobTitle:             "Support Lead",
		Location:             types.LocationRemote,
		RelocationApplicable: true,
		RawNotes:             "notes",
	})
	require.NoError(t, err)

	assert.False(t, s.Input().RelocationApplicable)
}

func TestFromInput_PreservesFields(t *testing.T) {
	in := types.JobFormInput{
		JobTitle:             "  Senior iOS Engineer ",
		Location:             types.LocationDenver,
		RelocationApplicable: true,
		RawNotes:             "needs 5 yrs Swift\n",
	}

	s, err := FromInput(in)
	require.NoError(t, err)

	assert.Equal(t, in, s.Input())
}

func TestFromInput_UnknownLocation(t *testing.T) {
	_, err := FromInput(types.JobFormInput{Location: "Berlin"})
	assert.Error(t, err)
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name  string
		title string
		notes string
		want  bool
	}{
		{name: "both set", title: "PM", notes: "notes", want: true},
		{name: "missing title", notes: "notes"},
		{name: "missing notes", title: "PM"},
		{name: "both empty"},
		{name: "whitespace counts as content", title: " ", notes: " ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetJobTitle(tt.title)
			s.SetRawNotes(tt.notes)
			assert.Equal(t, tt.want, s.CanSubmit())
		})
	}
}

func TestInput_IsIndependentCopy(t *testing.T) {
	s := New()
	s.SetJobTitle("Before")

	snap := s.Input()
	s.SetJobTitle("After")

	assert.Equal(t, "Before", snap.JobTitle)
	assert.Equal(t, "After", s.Input().JobTitle)
}
