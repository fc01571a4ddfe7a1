package advert

import (
	"github.com/jonathan/advert-generator/internal/prompts"
	"github.com/jonathan/advert-generator/internal/types"
)

// BuildPrompt renders the instruction document sent to the model.
// Output depends only on input; title and notes are inserted verbatim, even when empty.
// Relocation is reported as NO for locations that do not offer it.
func BuildPrompt(input types.JobFormInput) string {
	template := prompts.MustGet(prompts.AdvertFile, "job-advert")
	input.RelocationApplicable = input.RelocationApplicable && input.Location.OffersRelocation()

	return prompts.Format(template, map[string]string{
		"JobTitle":   input.JobTitle,
		"RawNotes":   input.RawNotes,
		"Location":   input.Location.String(),
		"Relocation": input.RelocationFlag(),
		"Benefits":   Benefits(input),
	})
}
