package quote

// AdditionalOption is an add-on offered on the extras step.
type AdditionalOption struct {
	ID      string
	Label   string
	Price   float64
	PerWeek bool
}

// Additionals lists the extras in the order the wizard shows them.
var Additionals = []AdditionalOption{
	{ID: "socket", Label: "Add Socket", Price: 65},
	{ID: "radiator", Label: "Move Radiator", Price: 120},
	{ID: "skip", Label: "Skip Hire (8 yd³)", Price: 260},
	{ID: "toilet", Label: "Builder's Toilet", Price: 40, PerWeek: true},
	{ID: "protection", Label: "Site Protection", Price: 90},
	{ID: "cleaning", Label: "Deep Cleaning", Price: 115},
}

// AdditionalLabel returns the display label for an add-on id, or the id
// itself when it is not one of the standard extras.
func AdditionalLabel(id string) string {
	for _, o := range Additionals {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}

func priceAdditionals(items []Additional) ([]LineItem, float64) {
	lines := make([]LineItem, 0, len(items))
	var total float64
	for _, a := range items {
		qty := a.Quantity
		if qty < 0 {
			qty = 0
		}
		line := LineItem{
			ID:        a.ID,
			Label:     AdditionalLabel(a.ID),
			Quantity:  qty,
			UnitPrice: a.Price,
			Total:     Round5(a.Price * qty),
		}
		total += line.Total
		lines = append(lines, line)
	}
	return lines, total
}
