// Package quote prices a renovation estimate from the wizard's form data.
//
// Calculate is pure: it performs no I/O, holds no state and returns the same
// Quote for the same FormData.
package quote

// WasteRemovalFee is the flat per-room charge for taking away old flooring.
const WasteRemovalFee = 100

// RoomResult is one room's share of a service estimate. ID is the room's id
// from the form, unique within its service.
type RoomResult struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	DaysLow  float64 `json:"daysLow"`
	DaysHigh float64 `json:"daysHigh"`
	CostLow  float64 `json:"costLow"`
	CostHigh float64 `json:"costHigh"`
}

// ServiceResult is the estimate for one selected service.
type ServiceResult struct {
	Service  Service      `json:"service"`
	Name     string       `json:"name"`
	DaysLow  float64      `json:"daysLow"`
	DaysHigh float64      `json:"daysHigh"`
	CostLow  float64      `json:"costLow"`
	CostHigh float64      `json:"costHigh"`
	Rooms    []RoomResult `json:"rooms"`
}

// LineItem is a priced add-on.
type LineItem struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// DesignFee is the design and management surcharge.
type DesignFee struct {
	Option  DesignManagement `json:"option"`
	Label   string           `json:"label"`
	Percent float64          `json:"percent"`
	Amount  float64          `json:"amount"`
}

// Quote is the full estimate. Day values keep full precision; use RoundDays
// when displaying them.
type Quote struct {
	Services          []ServiceResult `json:"services"`
	Additionals       []LineItem      `json:"additionals"`
	MaterialsLow      float64         `json:"materialsLow"`
	MaterialsHigh     float64         `json:"materialsHigh"`
	MaterialsMid      float64         `json:"materialsMid"`
	MaterialsIncluded bool            `json:"materialsIncluded"`
	DesignManagement  DesignFee       `json:"designManagement"`
	TotalDaysLow      float64         `json:"totalDaysLow"`
	TotalDaysHigh     float64         `json:"totalDaysHigh"`
	TotalLow          float64         `json:"totalLow"`
	TotalHigh         float64         `json:"totalHigh"`
	DurationDays      int             `json:"durationDays"`
	ProjectWeeks      int             `json:"projectWeeks"`
}

// Service returns the result for s, if it was priced.
func (q Quote) Service(s Service) (ServiceResult, bool) {
	for _, r := range q.Services {
		if r.Service == s {
			return r, true
		}
	}
	return ServiceResult{}, false
}

// Calculate prices form. It never fails: absent fields count as zero, false
// or the neutral option.
func Calculate(form FormData) Quote {
	prop := form.PropertyType.Multiplier()
	q := Quote{Services: []ServiceResult{}}

	var servicesLow, servicesHigh float64
	for _, s := range ServiceOrder {
		if !form.Populated(s) {
			continue
		}
		res := priceService(s, roomEstimates(form, s), prop)
		q.Services = append(q.Services, res)
		servicesLow += res.CostLow
		servicesHigh += res.CostHigh
		q.TotalDaysLow += res.DaysLow
		q.TotalDaysHigh += res.DaysHigh
	}

	var extras float64
	q.Additionals, extras = priceAdditionals(form.Additionals)

	mat := estimateMaterials(form.Materials)
	q.MaterialsLow, q.MaterialsHigh, q.MaterialsMid = mat.Low, mat.High, mat.Mid
	q.MaterialsIncluded = form.Materials != nil && form.Materials.IncludeInTotal

	q.TotalLow = servicesLow + extras
	q.TotalHigh = servicesHigh + extras
	if q.MaterialsIncluded {
		q.TotalLow += mat.Low
		q.TotalHigh += mat.High
	}

	q.DesignManagement = designFee(form.DesignManagement, (servicesLow+servicesHigh)/2, mat, q.MaterialsIncluded)
	q.TotalLow += q.DesignManagement.Amount
	q.TotalHigh += q.DesignManagement.Amount

	q.DurationDays = ceilDays(q.TotalDaysHigh)
	q.ProjectWeeks = ceilDays(q.TotalDaysHigh / 5)
	return q
}

func designFee(opt DesignManagement, servicesMid float64, mat MaterialsEstimate, included bool) DesignFee {
	fee := DesignFee{Option: opt, Label: opt.Label(), Percent: opt.Percent()}
	if opt == "" {
		fee.Option = DesignNone
	}
	if fee.Percent == 0 {
		return fee
	}
	base := servicesMid
	if !included {
		base += mat.Mid
	}
	fee.Amount = Round5(base * fee.Percent / 100)
	return fee
}

// roomEstimate is one room's base days plus any flat cost added after the
// day-to-cost conversion.
type roomEstimate struct {
	id    int64
	title string
	days  dayRange
	flat  float64
}

func roomEstimates(form FormData, s Service) []roomEstimate {
	var out []roomEstimate
	switch s {
	case ServiceKitchen:
		for i, r := range form.Kitchen.Areas {
			out = append(out, roomEstimate{id: r.ID, title: RoomTitle(r.Name, i), days: kitchenDays(r)})
		}
	case ServiceBathroom:
		for i, r := range form.Bathroom.Rooms {
			out = append(out, roomEstimate{id: r.ID, title: RoomTitle(r.Name, i), days: bathroomDays(r)})
		}
	case ServiceFlooring:
		for i, r := range form.Flooring.Areas {
			days, ok := flooringDays(r)
			if !ok {
				continue
			}
			e := roomEstimate{id: r.ID, title: RoomTitle(r.Name, i), days: days}
			if r.WasteRemoval {
				e.flat = WasteRemovalFee
			}
			out = append(out, e)
		}
	case ServiceCarpentry:
		for i, r := range form.Carpentry.Areas {
			out = append(out, roomEstimate{id: r.ID, title: RoomTitle(r.Name, i), days: carpentryDays(r)})
		}
	case ServicePainting:
		for i, r := range form.Painting.Rooms {
			out = append(out, roomEstimate{id: r.ID, title: RoomTitle(r.Name, i), days: paintingDays(r)})
		}
	case ServicePlastering:
		for i, r := range form.Plastering.Areas {
			out = append(out, roomEstimate{id: r.ID, title: RoomTitle(r.Name, i), days: plasteringDays(r)})
		}
	}
	return out
}

// priceService converts base days to the service's tier. Flooring sums its
// rounded room costs; every other service rounds once from its day totals.
func priceService(s Service, rooms []roomEstimate, prop float64) ServiceResult {
	tier := s.Tier()
	scale := tier.Efficiency * prop
	res := ServiceResult{Service: s, Name: s.DisplayName(), Rooms: make([]RoomResult, 0, len(rooms))}

	var base dayRange
	var roomLow, roomHigh float64
	for _, r := range rooms {
		rr := RoomResult{
			ID:       r.id,
			Title:    r.title,
			DaysLow:  r.days.low * scale,
			DaysHigh: r.days.high * scale,
		}
		rr.CostLow = Round5(rr.DaysLow*tier.DailyRate) + r.flat
		rr.CostHigh = Round5(rr.DaysHigh*tier.DailyRate) + r.flat
		res.Rooms = append(res.Rooms, rr)

		base.low += r.days.low
		base.high += r.days.high
		roomLow += rr.CostLow
		roomHigh += rr.CostHigh
	}

	res.DaysLow = base.low * scale
	res.DaysHigh = base.high * scale
	if s == ServiceFlooring {
		res.CostLow, res.CostHigh = roomLow, roomHigh
	} else {
		res.CostLow = Round5(res.DaysLow * tier.DailyRate)
		res.CostHigh = Round5(res.DaysHigh * tier.DailyRate)
	}
	return res
}
