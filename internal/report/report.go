// Package report renders the internal notification and customer summary
// emails for a submitted quote.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Simplici0/ebs-estimator/internal/breakdown"
	"github.com/Simplici0/ebs-estimator/internal/contact"
	"github.com/Simplici0/ebs-estimator/internal/quote"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("report").Funcs(template.FuncMap{
	"money":    Money,
	"days":     Days,
	"title":    func(s string) string { return cases.Title(language.BritishEnglish).String(s) },
	"property": PropertyLabel,
	"date":     func(t time.Time) string { return t.Format("2 January 2006") },
}).ParseFS(templateFS, "templates/*.html"))

// Data is everything both emails draw on.
type Data struct {
	Reference    string
	SubmittedAt  time.Time
	Contact      contact.Details
	PropertyType quote.PropertyType
	Quote        quote.Quote
	Sections     []breakdown.Section
}

// Money formats a whole-pound amount as £1,125.
func Money(v float64) string {
	return "£" + humanize.Comma(int64(math.Round(v)))
}

// Days formats a day count to one decimal place.
func Days(v float64) string {
	return fmt.Sprintf("%.1f", quote.RoundDays(v))
}

// PropertyLabel is the display name for a property type.
func PropertyLabel(p quote.PropertyType) string {
	switch p {
	case quote.PropertyDetached:
		return "Detached"
	case quote.PropertySemiDetached:
		return "Semi-Detached"
	case quote.PropertyEndTerrace:
		return "End Terrace"
	case quote.PropertyTerrace:
		return "Terrace"
	case quote.PropertyBungalow:
		return "Bungalow"
	case quote.PropertyFlat:
		return "Flat/Apartment"
	case "":
		return "Not specified"
	default:
		return breakdown.Humanize(string(p))
	}
}

// InternalEmail renders the notification sent to the business.
func InternalEmail(d Data) (string, error) {
	return render("internal.html", d)
}

// CustomerEmail renders the estimate summary sent to the customer.
func CustomerEmail(d Data) (string, error) {
	return render("customer.html", d)
}

func render(name string, d Data) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
