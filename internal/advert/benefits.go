package advert

import (
	"strings"

	"github.com/jonathan/advert-generator/internal/prompts"
	"github.com/jonathan/advert-generator/internal/types"
)

// benefitKeys maps a location to its block and optional relocation bullet in advert.json
var benefitKeys = map[types.Location]struct {
	block      string
	relocation string
}{
	types.LocationBudapest: {block: "benefits-budapest", relocation: "benefits-budapest-relocation"},
	types.LocationDenver:   {block: "benefits-denver", relocation: "benefits-denver-relocation"},
	types.LocationRemote:   {block: "benefits-remote"},
}

// LocationBenefits returns the bullets for a single location, including the
// relocation bullet when it applies. Unknown locations have no bullets.
func LocationBenefits(loc types.Location, relocationApplicable bool) string {
	keys, ok := benefitKeys[loc]
	if !ok {
		return ""
	}

	block := prompts.MustGet(prompts.AdvertFile, keys.block)
	if relocationApplicable && keys.relocation != "" && loc.OffersRelocation() {
		block += "\n" + prompts.MustGet(prompts.AdvertFile, keys.relocation)
	}
	return block
}

// Benefits resolves the complete benefits section: the global baseline
// followed by exactly one location block.
func Benefits(input types.JobFormInput) string {
	var sb strings.Builder

	sb.WriteString("**Global Baseline:**\n")
	sb.WriteString(prompts.MustGet(prompts.AdvertFile, "benefits-global"))
	sb.WriteString("\n\n**")
	sb.WriteString(input.Location.String())
	sb.WriteString(":**\n")
	sb.WriteString(LocationBenefits(input.Location, input.RelocationApplicable))

	return sb.String()
}
