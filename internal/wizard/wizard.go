// Package wizard sequences the estimator steps and applies form updates.
//
// All view state lives in State, which is plain data the client round-trips;
// nothing here is kept between requests.
package wizard

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Simplici0/ebs-estimator/internal/quote"
)

// Step ids outside the per-service steps.
const (
	StepServices    = "services"
	StepProperty    = "property"
	StepAdditionals = "additionals"
	StepMaterials   = "materials"
	StepDesign      = "design"
	StepQuote       = "quote"
)

// ErrUnknownField is returned by SetField for a field FormData does not have.
var ErrUnknownField = errors.New("unknown form field")

// Step is one page of the wizard.
type Step struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var serviceTitles = map[quote.Service]string{
	quote.ServiceKitchen:    "Kitchen",
	quote.ServiceBathroom:   "Bathroom",
	quote.ServiceFlooring:   "Flooring",
	quote.ServiceCarpentry:  "Carpentry",
	quote.ServicePainting:   "Painting",
	quote.ServicePlastering: "Plastering",
}

// Steps returns the wizard's steps for form: the fixed opening steps, one
// step per selected service in service order, then the closing steps.
func Steps(form quote.FormData) []Step {
	steps := []Step{
		{ID: StepServices, Title: "Services"},
		{ID: StepProperty, Title: "Property"},
	}
	for _, s := range quote.ServiceOrder {
		if form.Selected(s) {
			steps = append(steps, Step{ID: string(s), Title: serviceTitles[s]})
		}
	}
	return append(steps,
		Step{ID: StepAdditionals, Title: "Extras"},
		Step{ID: StepMaterials, Title: "Materials"},
		Step{ID: StepDesign, Title: "Design"},
		Step{ID: StepQuote, Title: "Quote"},
	)
}

// CanProceed reports whether the user may leave stepID.
func CanProceed(form quote.FormData, stepID string) bool {
	switch stepID {
	case StepServices:
		return len(form.SelectedServices) > 0
	case StepProperty:
		return form.PropertyType != ""
	default:
		return true
	}
}

// State is the wizard's view state: the current step index and, per service,
// the ids of rooms whose panels are expanded.
type State struct {
	Current  int                `json:"current"`
	Expanded map[string][]int64 `json:"expanded,omitempty"`
}

// Clamp keeps Current inside steps, which shrink when services are deselected.
func (s State) Clamp(steps []Step) State {
	switch {
	case s.Current < 0:
		s.Current = 0
	case s.Current >= len(steps):
		s.Current = len(steps) - 1
	}
	return s
}

// Next moves forward one step when the current step allows it.
func (s State) Next(form quote.FormData) State {
	steps := Steps(form)
	s = s.Clamp(steps)
	if s.Current < len(steps)-1 && CanProceed(form, steps[s.Current].ID) {
		s.Current++
	}
	return s
}

// Prev moves back one step.
func (s State) Prev() State {
	if s.Current > 0 {
		s.Current--
	}
	return s
}

// GoTo jumps to index, but only backwards or to the current step.
func (s State) GoTo(index int) State {
	if index >= 0 && index <= s.Current {
		s.Current = index
	}
	return s
}

// Toggle expands or collapses a room panel.
func (s State) Toggle(service quote.Service, roomID int64) State {
	expanded := make(map[string][]int64, len(s.Expanded)+1)
	for k, v := range s.Expanded {
		expanded[k] = slices.Clone(v)
	}
	key := string(service)
	ids := expanded[key]
	if i := slices.Index(ids, roomID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, roomID)
	}
	if len(ids) == 0 {
		delete(expanded, key)
	} else {
		expanded[key] = ids
	}
	s.Expanded = expanded
	return s
}

// IsExpanded reports whether a room panel is open.
func (s State) IsExpanded(service quote.Service, roomID int64) bool {
	return slices.Contains(s.Expanded[string(service)], roomID)
}

// Fields lists the FormData fields SetField accepts.
func Fields() []string {
	return slices.Sorted(maps.Keys(setters))
}

var setters = map[string]func(*quote.FormData, json.RawMessage) error{
	"propertyType":     setter(func(f *quote.FormData, v quote.PropertyType) { f.PropertyType = v }),
	"selectedServices": setter(func(f *quote.FormData, v []quote.Service) { f.SelectedServices = v }),
	"kitchen":          setter(func(f *quote.FormData, v *quote.KitchenData) { f.Kitchen = v }),
	"bathroom":         setter(func(f *quote.FormData, v *quote.BathroomData) { f.Bathroom = v }),
	"flooring":         setter(func(f *quote.FormData, v *quote.FlooringData) { f.Flooring = v }),
	"carpentry":        setter(func(f *quote.FormData, v *quote.CarpentryData) { f.Carpentry = v }),
	"painting":         setter(func(f *quote.FormData, v *quote.PaintingData) { f.Painting = v }),
	"plastering":       setter(func(f *quote.FormData, v *quote.PlasteringData) { f.Plastering = v }),
	"additionals":      setter(func(f *quote.FormData, v []quote.Additional) { f.Additionals = v }),
	"materials":        setter(func(f *quote.FormData, v *quote.Materials) { f.Materials = v }),
	"designManagement": setter(func(f *quote.FormData, v quote.DesignManagement) { f.DesignManagement = v }),
}

// setter decodes into a fresh value, so nothing is shared with the form the
// update started from.
func setter[T any](assign func(*quote.FormData, T)) func(*quote.FormData, json.RawMessage) error {
	return func(f *quote.FormData, raw json.RawMessage) error {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		assign(f, v)
		return nil
	}
}

// SetField returns a copy of form with one top-level field replaced by the
// decoded value. form itself is never modified.
func SetField(form quote.FormData, field string, raw json.RawMessage) (quote.FormData, error) {
	set, ok := setters[field]
	if !ok {
		return form, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownField, field, strings.Join(Fields(), ", "))
	}
	next := form
	if err := set(&next, raw); err != nil {
		return form, fmt.Errorf("set %s: %w", field, err)
	}
	return next, nil
}
