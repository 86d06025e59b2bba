package quote

import (
	"maps"
	"slices"
)

// MaterialQuality is a ballpark material price band.
type MaterialQuality string

const (
	QualityBasic    MaterialQuality = "basic"
	QualityStandard MaterialQuality = "standard"
	QualityPremium  MaterialQuality = "premium"
)

// CatalogItem is a ballpark-priced material with a unit price range per quality.
type CatalogItem struct {
	ID     string
	Module string
	Label  string
	Unit   string
	Prices map[MaterialQuality][2]float64
}

func prices(basic, standard, premium [2]float64) map[MaterialQuality][2]float64 {
	return map[MaterialQuality][2]float64{
		QualityBasic:    basic,
		QualityStandard: standard,
		QualityPremium:  premium,
	}
}

// Catalog is the ballpark materials price list, keyed by item id.
var Catalog = map[string]CatalogItem{
	"cabinets":         {ID: "cabinets", Module: "kitchen", Label: "Kitchen Cabinets", Unit: "set", Prices: prices([2]float64{1000, 2000}, [2]float64{2000, 3500}, [2]float64{3500, 6000})},
	"worktops":         {ID: "worktops", Module: "kitchen", Label: "Worktops", Unit: "lm", Prices: prices([2]float64{40, 80}, [2]float64{80, 140}, [2]float64{220, 380})},
	"appliances":       {ID: "appliances", Module: "kitchen", Label: "Appliances Set", Unit: "set", Prices: prices([2]float64{900, 1400}, [2]float64{1400, 2200}, [2]float64{2200, 3500})},
	"sink":             {ID: "sink", Module: "kitchen", Label: "Sink & Tap", Unit: "set", Prices: prices([2]float64{120, 250}, [2]float64{250, 450}, [2]float64{450, 800})},
	"kitchen_tiles":    {ID: "kitchen_tiles", Module: "kitchen", Label: "Tiles (Splashback)", Unit: "m²", Prices: prices([2]float64{18, 28}, [2]float64{28, 45}, [2]float64{45, 75})},
	"kitchen_hardware": {ID: "kitchen_hardware", Module: "kitchen", Label: "Hardware & Handles", Unit: "set", Prices: prices([2]float64{40, 80}, [2]float64{80, 150}, [2]float64{150, 280})},

	"bathroom_suite":    {ID: "bathroom_suite", Module: "bathroom", Label: "Bathroom Suite", Unit: "set", Prices: prices([2]float64{500, 900}, [2]float64{900, 1600}, [2]float64{1600, 3000})},
	"bathroom_tiles":    {ID: "bathroom_tiles", Module: "bathroom", Label: "Tiles & Adhesives", Unit: "m²", Prices: prices([2]float64{18, 28}, [2]float64{28, 45}, [2]float64{45, 75})},
	"radiator":          {ID: "radiator", Module: "bathroom", Label: "Radiator / Towel Rail", Unit: "each", Prices: prices([2]float64{90, 150}, [2]float64{150, 250}, [2]float64{250, 450})},
	"bathroom_lighting": {ID: "bathroom_lighting", Module: "bathroom", Label: "Lighting Fixtures", Unit: "point", Prices: prices([2]float64{20, 40}, [2]float64{40, 80}, [2]float64{80, 150})},
	"bathroom_hardware": {ID: "bathroom_hardware", Module: "bathroom", Label: "Hardware & Fittings", Unit: "set", Prices: prices([2]float64{40, 80}, [2]float64{80, 150}, [2]float64{150, 280})},

	"flooring": {ID: "flooring", Module: "flooring", Label: "Flooring Materials", Unit: "m²", Prices: prices([2]float64{12, 25}, [2]float64{20, 40}, [2]float64{30, 60})},
	"underlay": {ID: "underlay", Module: "flooring", Label: "Underlay", Unit: "m²", Prices: prices([2]float64{3, 5}, [2]float64{5, 8}, [2]float64{8, 12})},
	"adhesive": {ID: "adhesive", Module: "flooring", Label: "Adhesives & Grout", Unit: "set", Prices: prices([2]float64{30, 50}, [2]float64{50, 80}, [2]float64{80, 120})},
	"beading":  {ID: "beading", Module: "flooring", Label: "Skirting/Beading", Unit: "lm", Prices: prices([2]float64{3, 6}, [2]float64{6, 10}, [2]float64{10, 18})},

	"paint":      {ID: "paint", Module: "painting", Label: "Paint & Sundries", Unit: "room", Prices: prices([2]float64{25, 40}, [2]float64{40, 70}, [2]float64{70, 120})},
	"filler":     {ID: "filler", Module: "painting", Label: "Filler & Caulk", Unit: "set", Prices: prices([2]float64{15, 25}, [2]float64{25, 40}, [2]float64{40, 60})},
	"protection": {ID: "protection", Module: "painting", Label: "Protection Materials", Unit: "set", Prices: prices([2]float64{20, 35}, [2]float64{35, 55}, [2]float64{55, 80})},

	"timber":           {ID: "timber", Module: "carpentry", Label: "Timber", Unit: "lm", Prices: prices([2]float64{5, 10}, [2]float64{10, 18}, [2]float64{18, 30})},
	"boards":           {ID: "boards", Module: "carpentry", Label: "Boards (MDF/Ply)", Unit: "m²", Prices: prices([2]float64{8, 15}, [2]float64{15, 25}, [2]float64{25, 40})},
	"joinery_hardware": {ID: "joinery_hardware", Module: "carpentry", Label: "Hardware & Fixings", Unit: "set", Prices: prices([2]float64{30, 50}, [2]float64{50, 90}, [2]float64{90, 150})},
	"finishes":         {ID: "finishes", Module: "carpentry", Label: "Finishes & Stains", Unit: "set", Prices: prices([2]float64{20, 35}, [2]float64{35, 60}, [2]float64{60, 100})},

	"plaster":       {ID: "plaster", Module: "plastering", Label: "Plaster (bags)", Unit: "bag", Prices: prices([2]float64{6, 10}, [2]float64{10, 15}, [2]float64{15, 22})},
	"plasterboards": {ID: "plasterboards", Module: "plastering", Label: "Plasterboards", Unit: "m²", Prices: prices([2]float64{5, 8}, [2]float64{8, 12}, [2]float64{12, 18})},
	"beads_tape":    {ID: "beads_tape", Module: "plastering", Label: "Beads & Tape", Unit: "lm", Prices: prices([2]float64{2, 4}, [2]float64{4, 7}, [2]float64{7, 12})},

	"lighting":        {ID: "lighting", Module: "common", Label: "Lighting Fixtures", Unit: "point", Prices: prices([2]float64{20, 40}, [2]float64{40, 80}, [2]float64{80, 150})},
	"electrical":      {ID: "electrical", Module: "common", Label: "Electrical Supplies", Unit: "set", Prices: prices([2]float64{50, 80}, [2]float64{80, 140}, [2]float64{140, 250})},
	"common_hardware": {ID: "common_hardware", Module: "common", Label: "General Hardware", Unit: "set", Prices: prices([2]float64{40, 70}, [2]float64{70, 120}, [2]float64{120, 200})},
}

// MaterialsEstimate is the materials range shown alongside the labour quote.
type MaterialsEstimate struct {
	Low  float64
	High float64
	Mid  float64
}

func estimateMaterials(m *Materials) MaterialsEstimate {
	if m == nil {
		return MaterialsEstimate{}
	}
	if m.Mode == MaterialsBallpark {
		return ballpark(m)
	}
	var total float64
	for _, item := range m.Custom {
		total += item.Amount
	}
	total = Round5(total)
	return MaterialsEstimate{Low: total, High: total, Mid: total}
}

func ballpark(m *Materials) MaterialsEstimate {
	var low, high float64
	// Sorted so float accumulation is identical across runs.
	for _, id := range slices.Sorted(maps.Keys(m.Selected)) {
		sel := m.Selected[id]
		item, ok := Catalog[id]
		if !ok {
			continue
		}
		quality := sel.Quality
		if quality == "" {
			quality = QualityStandard
		}
		band, ok := item.Prices[quality]
		if !ok {
			continue
		}
		qty := sel.Quantity
		if qty <= 0 {
			qty = 1
		}
		low += band[0] * qty
		high += band[1] * qty
	}

	contingency := 1 + m.Contingency/100
	low = Round5(low * contingency)
	high = Round5(high * contingency)
	return MaterialsEstimate{Low: low, High: high, Mid: Round5((low + high) / 2)}
}
