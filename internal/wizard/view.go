package wizard

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Simplici0/ebs-estimator/internal/quote"
)

// ErrUnknownAction is returned by Apply for an action it does not handle.
var ErrUnknownAction = errors.New("unknown wizard action")

// Action names a wizard transition requested by the client.
type Action string

const (
	ActionNone   Action = ""
	ActionNext   Action = "next"
	ActionPrev   Action = "prev"
	ActionGoTo   Action = "goto"
	ActionToggle Action = "toggle"
)

// FieldUpdate replaces one top-level FormData field.
type FieldUpdate struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// Request is one round trip from the client: the current form and view
// state, an optional field update and an optional navigation action.
type Request struct {
	FormData quote.FormData `json:"formData"`
	State    State          `json:"state"`
	Set      *FieldUpdate   `json:"set,omitempty"`
	Action   Action         `json:"action,omitempty"`
	Index    int            `json:"index,omitempty"`
	Service  quote.Service  `json:"service,omitempty"`
	RoomID   int64          `json:"roomId,omitempty"`
}

// View is what the client renders after a Request.
type View struct {
	FormData   quote.FormData `json:"formData"`
	Steps      []Step         `json:"steps"`
	Step       Step           `json:"step"`
	CanProceed bool           `json:"canProceed"`
	IsLast     bool           `json:"isLast"`
	State      State          `json:"state"`
}

// Apply runs the field update first, then the action, against the updated
// form.
func Apply(req Request) (View, error) {
	form := req.FormData
	if req.Set != nil {
		var err error
		form, err = SetField(form, req.Set.Field, req.Set.Value)
		if err != nil {
			return View{}, err
		}
	}

	state := req.State.Clamp(Steps(form))
	switch req.Action {
	case ActionNone:
	case ActionNext:
		state = state.Next(form)
	case ActionPrev:
		state = state.Prev()
	case ActionGoTo:
		state = state.GoTo(req.Index)
	case ActionToggle:
		state = state.Toggle(req.Service, req.RoomID)
	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	steps := Steps(form)
	current := steps[state.Current]
	return View{
		FormData:   form,
		Steps:      steps,
		Step:       current,
		CanProceed: CanProceed(form, current.ID),
		IsLast:     state.Current == len(steps)-1,
		State:      state,
	}, nil
}
