package submission

import (
	"fmt"
	"strings"
	"time"

	"github.com/Simplici0/ebs-estimator/internal/breakdown"
	"github.com/Simplici0/ebs-estimator/internal/contact"
	"github.com/Simplici0/ebs-estimator/internal/quote"
	"github.com/Simplici0/ebs-estimator/internal/report"
)

// Composed is a quote rendered into a ready-to-send Request.
type Composed struct {
	Request   Request
	Reference string
	Quote     quote.Quote
	Sections  []breakdown.Section
}

// Reference builds the customer-facing quote reference.
func Reference(now time.Time, submissionKey string) string {
	key := strings.ToUpper(strings.ReplaceAll(submissionKey, "-", ""))
	if len(key) > 6 {
		key = key[:6]
	}
	return fmt.Sprintf("EBS-%s-%s", now.Format("060102"), key)
}

// Compose prices form and renders both emails for the given customer.
// details must already be normalized and validated.
func Compose(form quote.FormData, details contact.Details, ref string, now time.Time) (Composed, error) {
	q, sections := breakdown.Build(form)
	data := report.Data{
		Reference:    ref,
		SubmittedAt:  now,
		Contact:      details,
		PropertyType: form.PropertyType,
		Quote:        q,
		Sections:     sections,
	}

	internal, err := report.InternalEmail(data)
	if err != nil {
		return Composed{}, err
	}
	customer, err := report.CustomerEmail(data)
	if err != nil {
		return Composed{}, err
	}
	return Composed{
		Request: Request{
			InternalEmailHTML: internal,
			CustomerEmailHTML: customer,
			CustomerEmail:     details.Email,
			CustomerName:      details.FullName,
		},
		Reference: ref,
		Quote:     q,
		Sections:  sections,
	}, nil
}
