package wizard

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Simplici0/ebs-estimator/internal/quote"
)

func stepIDs(steps []Step) []string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}

func TestSteps_InsertsSelectedServicesInFixedOrder(t *testing.T) {
	form := quote.FormData{SelectedServices: []quote.Service{quote.ServicePlastering, quote.ServiceKitchen}}
	got := stepIDs(Steps(form))
	want := []string{"services", "property", "kitchen", "plastering", "additionals", "materials", "design", "quote"}
	if len(got) != len(want) {
		t.Fatalf("steps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("steps = %v, want %v", got, want)
		}
	}
	if Steps(form)[4].Title != "Extras" {
		t.Fatalf("additionals title = %q, want Extras", Steps(form)[4].Title)
	}
}

func TestCanProceed(t *testing.T) {
	empty := quote.FormData{}
	if CanProceed(empty, StepServices) {
		t.Fatalf("services step should block with no selection")
	}
	if CanProceed(empty, StepProperty) {
		t.Fatalf("property step should block without a property type")
	}
	if !CanProceed(empty, StepMaterials) {
		t.Fatalf("materials step should never block")
	}

	form := quote.FormData{SelectedServices: []quote.Service{quote.ServiceFlooring}, PropertyType: quote.PropertyFlat}
	if !CanProceed(form, StepServices) || !CanProceed(form, StepProperty) {
		t.Fatalf("filled form should proceed")
	}
}

func TestState_Navigation(t *testing.T) {
	form := quote.FormData{}
	s := State{}.Next(form)
	if s.Current != 0 {
		t.Fatalf("next without services moved to %d", s.Current)
	}

	form.SelectedServices = []quote.Service{quote.ServiceKitchen}
	s = s.Next(form)
	if s.Current != 1 {
		t.Fatalf("current = %d, want 1", s.Current)
	}
	if blocked := s.Next(form); blocked.Current != 1 {
		t.Fatalf("property step without type moved to %d", blocked.Current)
	}

	form.PropertyType = quote.PropertyBungalow
	s = s.Next(form).Next(form)
	if s.Current != 3 {
		t.Fatalf("current = %d, want 3", s.Current)
	}
	if ahead := s.GoTo(5); ahead.Current != 3 {
		t.Fatalf("goto ahead moved to %d", ahead.Current)
	}
	if back := s.GoTo(1); back.Current != 1 {
		t.Fatalf("goto back = %d, want 1", back.Current)
	}
	if s.Prev().Current != 2 {
		t.Fatalf("prev = %d, want 2", s.Prev().Current)
	}
	if (State{}).Prev().Current != 0 {
		t.Fatalf("prev from first step moved")
	}

	last := State{Current: len(Steps(form)) - 1}
	if last.Next(form).Current != last.Current {
		t.Fatalf("next from last step moved")
	}
}

func TestState_ToggleDoesNotMutate(t *testing.T) {
	orig := State{Expanded: map[string][]int64{"kitchen": {1}}}
	opened := orig.Toggle(quote.ServiceKitchen, 2)
	if !opened.IsExpanded(quote.ServiceKitchen, 2) || !opened.IsExpanded(quote.ServiceKitchen, 1) {
		t.Fatalf("expanded = %v", opened.Expanded)
	}
	if orig.IsExpanded(quote.ServiceKitchen, 2) || len(orig.Expanded["kitchen"]) != 1 {
		t.Fatalf("original state mutated: %v", orig.Expanded)
	}

	closed := opened.Toggle(quote.ServiceKitchen, 1).Toggle(quote.ServiceKitchen, 2)
	if _, ok := closed.Expanded["kitchen"]; ok {
		t.Fatalf("empty service entry kept: %v", closed.Expanded)
	}
}

func TestSetField_ReturnsNewValue(t *testing.T) {
	orig := quote.FormData{
		SelectedServices: []quote.Service{quote.ServiceKitchen},
		Kitchen:          &quote.KitchenData{Areas: []quote.KitchenRoom{{Name: "Old"}}},
	}

	next, err := SetField(orig, "kitchen", json.RawMessage(`{"areas":[{"name":"New","size":"large"}]}`))
	if err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if next.Kitchen.Areas[0].Name != "New" || next.Kitchen.Areas[0].Size != quote.SizeLarge {
		t.Fatalf("kitchen = %+v", next.Kitchen)
	}
	if orig.Kitchen.Areas[0].Name != "Old" {
		t.Fatalf("original form mutated: %+v", orig.Kitchen)
	}
	if len(next.SelectedServices) != 1 {
		t.Fatalf("other fields lost: %+v", next)
	}
}

func TestSetField_Errors(t *testing.T) {
	form := quote.FormData{PropertyType: quote.PropertyFlat}

	_, err := SetField(form, "colourScheme", json.RawMessage(`"teal"`))
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
	if !strings.Contains(err.Error(), "designManagement, flooring, kitchen") {
		t.Fatalf("err = %q, want the accepted fields listed", err)
	}

	got, err := SetField(form, "propertyType", json.RawMessage(`42`))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if got.PropertyType != quote.PropertyFlat {
		t.Fatalf("failed update changed form: %+v", got)
	}
}

func TestApply_SetThenNavigate(t *testing.T) {
	view, err := Apply(Request{
		Set:    &FieldUpdate{Field: "selectedServices", Value: json.RawMessage(`["bathroom","painting"]`)},
		Action: ActionNext,
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if view.State.Current != 1 || view.Step.ID != StepProperty {
		t.Fatalf("view = %+v", view)
	}
	if view.CanProceed {
		t.Fatalf("property step should block without a type")
	}
	if len(view.Steps) != 8 {
		t.Fatalf("steps = %v", stepIDs(view.Steps))
	}
}

func TestApply_ClampsWhenStepsShrink(t *testing.T) {
	req := Request{
		FormData: quote.FormData{
			PropertyType:     quote.PropertyTerrace,
			SelectedServices: []quote.Service{quote.ServiceKitchen, quote.ServiceBathroom},
		},
		State: State{Current: 7},
		Set:   &FieldUpdate{Field: "selectedServices", Value: json.RawMessage(`["kitchen"]`)},
	}
	view, err := Apply(req)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if view.State.Current != 6 || !view.IsLast {
		t.Fatalf("state = %+v, want last step 6", view.State)
	}
}

func TestApply_UnknownAction(t *testing.T) {
	if _, err := Apply(Request{Action: "jump"}); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}
