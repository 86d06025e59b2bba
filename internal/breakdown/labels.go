package breakdown

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Option labels as the wizard shows them. Ids without an entry are
// title-cased from the id itself.
var (
	kitchenElectrics = map[string]string{
		"oven":          "Oven",
		"downlights":    "Downlights",
		"cooker_hood":   "Cooker Hood",
		"extra_sockets": "Extra Sockets",
	}
	kitchenPlumbing = map[string]string{
		"sink":            "Sink",
		"dishwasher":      "Dishwasher",
		"washing_machine": "Washing Machine",
		"radiator":        "Radiator",
	}
	bathroomFixtures = map[string]string{
		"bath":       "Bath",
		"shower":     "Shower Enclosure",
		"basin":      "Basin",
		"wc":         "WC",
		"vanity":     "Vanity",
		"towel_rail": "Towel Rail",
	}
	bathroomElectrics = map[string]string{
		"downlights":    "Downlights",
		"extractor":     "Extractor Fan",
		"shaver_socket": "Shaver Socket",
		"mirror_light":  "Mirror Light",
	}
	bathroomPlumbing = map[string]string{
		"toilet":      "Toilet",
		"shower_bath": "Shower/Bath",
		"wastepipe":   "Wastepipe",
		"sink":        "Sink",
		"radiator":    "Radiator",
	}
	worktops = map[string]string{
		"solid_wood": "Solid Wood",
	}
	layouts = map[string]string{
		"keep":  "Keep existing",
		"minor": "Minor change",
		"major": "Major change",
	}
	access = map[string]string{
		"easy":       "Easy",
		"stairs":     "Stairs only",
		"no_parking": "No parking",
	}
	floorTypes = map[string]string{
		"lvt":             "LVT",
		"engineered_wood": "Engineered Wood",
		"solid_wood":      "Solid Wood",
	}
	carpentryFinishes = map[string]string{
		"sprayed": "Sprayed Finish",
	}
	paintRoomTypes = map[string]string{
		"standard":    "Standard",
		"hallway":     "Hallway",
		"stairs":      "Stairs & Landing",
		"hall_stairs": "Hall + Stairs",
		"kitchen":     "Kitchen",
		"bathroom":    "Bathroom",
	}
	staircaseHeights = map[string]string{
		"single": "Single-storey",
		"double": "Double-height",
	}
	plasterWork = map[string]string{
		"reskim":  "Reskim",
		"patch":   "Patch Work",
		"reboard": "Reboard & Skim",
		"artex":   "Artex Removal",
	}
)

func label(table map[string]string, id string) string {
	if l, ok := table[id]; ok {
		return l
	}
	return Humanize(id)
}

func labels(table map[string]string, ids []string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		out = append(out, label(table, id))
	}
	return strings.Join(out, ", ")
}

// Humanize turns an option id such as "no_parking" into "No Parking".
func Humanize(id string) string {
	s := strings.NewReplacer("_", " ").Replace(strings.TrimSpace(id))
	// Casers hold state, so each call gets its own.
	return cases.Title(language.BritishEnglish).String(s)
}
