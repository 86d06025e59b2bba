// Package contact normalises and validates the customer details collected
// before a quote is submitted.
package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether s looks like name@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Details is the customer contact form.
type Details struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,simpleemail"`
	Phone    string `json:"phone"`
	Address1 string `json:"address1" validate:"required"`
	Address2 string `json:"address2"`
	City     string `json:"city" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
	Notes    string `json:"notes"`
}

// Normalize trims every field and upper-cases the postcode.
func Normalize(d Details) Details {
	return Details{
		FullName: strings.TrimSpace(d.FullName),
		Email:    strings.TrimSpace(d.Email),
		Phone:    strings.TrimSpace(d.Phone),
		Address1: strings.TrimSpace(d.Address1),
		Address2: strings.TrimSpace(d.Address2),
		City:     strings.TrimSpace(d.City),
		Postcode: strings.ToUpper(strings.TrimSpace(d.Postcode)),
		Notes:    strings.TrimSpace(d.Notes),
	}
}

var requiredMessages = map[string]string{
	"fullName": "Full name is required",
	"email":    "Email is required",
	"address1": "Address line 1 is required",
	"city":     "City / town is required",
	"postcode": "Postcode is required",
}

// Validator checks Details against the form rules.
type Validator struct {
	v *validator.Validate
}

// NewValidator reports fields by their JSON names and uses the form's loose email rule.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	return &Validator{v: v}
}

// Validate returns a message per invalid field, keyed by JSON field name.
// An empty map means d can be submitted. d is validated as given; call
// Normalize first.
func (val *Validator) Validate(d Details) map[string]string {
	problems := map[string]string{}
	err := val.v.Struct(d)
	if err == nil {
		return problems
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		problems["form"] = err.Error()
		return problems
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := problems[field]; seen {
			continue
		}
		switch fe.Tag() {
		case "simpleemail":
			problems[field] = "Please enter a valid email address"
		default:
			problems[field] = requiredMessages[field]
		}
	}
	return problems
}
