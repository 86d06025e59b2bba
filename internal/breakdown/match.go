package breakdown

import "github.com/Simplici0/ebs-estimator/internal/quote"

// RoomLine is a priced room with its summary bullets.
type RoomLine struct {
	quote.RoomResult
	Bullets []string `json:"bullets"`
}

// Section joins one priced service with its display details.
type Section struct {
	quote.ServiceResult
	Rooms []RoomLine `json:"rooms"`
}

// Match pairs every priced service with the module detail of the same name.
// Lists are never aligned by position: a service may be priced without a
// module and the two lists can differ in length.
func Match(details []ModuleDetail, services []quote.ServiceResult) []Section {
	byName := make(map[string]ModuleDetail, len(details))
	for _, d := range details {
		byName[d.Module] = d
	}

	sections := make([]Section, 0, len(services))
	for _, svc := range services {
		sections = append(sections, Section{
			ServiceResult: svc,
			Rooms:         pairRooms(svc.Rooms, byName[svc.Name].Rooms),
		})
	}
	return sections
}

// pairRooms attaches bullets by room id. Flooring prices fewer rooms than it
// displays, so positions do not line up. Rooms sent without an id (id 0)
// fall back to their title, taking the first unused detail so duplicate
// names still pair in order.
func pairRooms(priced []quote.RoomResult, details []RoomDetail) []RoomLine {
	used := make([]bool, len(details))
	lines := make([]RoomLine, 0, len(priced))
	for _, r := range priced {
		line := RoomLine{RoomResult: r, Bullets: []string{}}
		for i, d := range details {
			if used[i] || d.ID != r.ID {
				continue
			}
			if r.ID == 0 && d.Title != r.Title {
				continue
			}
			used[i] = true
			line.Bullets = Bullets(d)
			break
		}
		lines = append(lines, line)
	}
	return lines
}

// Build prices form and returns the quote with its matched sections.
func Build(form quote.FormData) (quote.Quote, []Section) {
	q := quote.Calculate(form)
	return q, Match(ModuleDetails(form), q.Services)
}
