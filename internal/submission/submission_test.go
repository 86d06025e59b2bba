package submission

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/Simplici0/ebs-estimator/internal/contact"
	"github.com/Simplici0/ebs-estimator/internal/deliverylog"
	"github.com/Simplici0/ebs-estimator/internal/mail"
	"github.com/Simplici0/ebs-estimator/internal/metrics"
	"github.com/Simplici0/ebs-estimator/internal/quote"
)

type fakeRecorder struct {
	entries []deliverylog.Delivery
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, d deliverylog.Delivery) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.entries = append(f.entries, d)
	return int64(len(f.entries)), nil
}

var errProviderDown = errors.New("provider down")

func validRequest() Request {
	return Request{
		InternalEmailHTML: "<p>internal</p>",
		CustomerEmailHTML: "<p>customer</p>",
		CustomerEmail:     " sam@example.com ",
		CustomerName:      "Sam",
	}
}

func newDispatcher(sender mail.Sender, rec DeliveryRecorder) (*Dispatcher, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	return &Dispatcher{
		Sender:     sender,
		From:       "EBS <no-reply@example.com>",
		InternalTo: "office@example.com",
		Deliveries: rec,
		Metrics:    m,
		Logger:     zerolog.Nop(),
	}, m
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"complete", validRequest(), nil},
		{"blank internal html", Request{InternalEmailHTML: "  ", CustomerEmailHTML: "x", CustomerEmail: "a@b.co"}, ErrMissingFields},
		{"missing customer html", Request{InternalEmailHTML: "x", CustomerEmail: "a@b.co"}, ErrMissingFields},
		{"missing email", Request{InternalEmailHTML: "x", CustomerEmailHTML: "x"}, ErrMissingFields},
		{"bad email", Request{InternalEmailHTML: "x", CustomerEmailHTML: "x", CustomerEmail: "sam at example"}, ErrInvalidEmail},
	}
	for _, tc := range cases {
		if err := tc.req.Normalize().Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNormalizeDefaultsName(t *testing.T) {
	r := Request{CustomerName: "   "}.Normalize()
	if r.CustomerName != DefaultCustomerName {
		t.Fatalf("name = %q, want %q", r.CustomerName, DefaultCustomerName)
	}
}

func TestDispatch_SendsInternalThenCustomer(t *testing.T) {
	sender := &mail.InMemory{}
	rec := &fakeRecorder{}
	d, m := newDispatcher(sender, rec)

	res, err := d.Dispatch(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res.SubmissionID == "" || res.InternalID != "memory-1" || res.CustomerID != "memory-2" {
		t.Fatalf("result = %+v", res)
	}

	out := sender.Outbox()
	if len(out) != 2 {
		t.Fatalf("outbox = %d, want 2", len(out))
	}
	internal, customer := out[0], out[1]
	if internal.To != "office@example.com" || internal.Subject != "New Quote Request — Sam" || internal.ReplyTo != "sam@example.com" {
		t.Fatalf("internal = %+v", internal)
	}
	if customer.To != "sam@example.com" || customer.Subject != "Your EBS Estimate Summary" || customer.HTML != "<p>customer</p>" {
		t.Fatalf("customer = %+v", customer)
	}

	if len(rec.entries) != 2 || rec.entries[0].Kind != deliverylog.KindInternal || rec.entries[1].Status != deliverylog.StatusSent {
		t.Fatalf("deliveries = %+v", rec.entries)
	}
	if rec.entries[0].SubmissionID != res.SubmissionID {
		t.Fatalf("delivery submission id = %q, want %q", rec.entries[0].SubmissionID, res.SubmissionID)
	}
	if got := testutil.ToFloat64(m.Submissions.WithLabelValues("ok")); got != 1 {
		t.Fatalf("ok submissions = %v", got)
	}
}

func TestDispatch_InternalFailureStopsBeforeCustomer(t *testing.T) {
	sender := &mail.InMemory{Fail: func(msg mail.Message) error {
		if msg.To == "office@example.com" {
			return errProviderDown
		}
		return nil
	}}
	rec := &fakeRecorder{}
	d, m := newDispatcher(sender, rec)

	_, err := d.Dispatch(context.Background(), validRequest())
	var sendErr *SendError
	if !errors.As(err, &sendErr) || sendErr.Kind != deliverylog.KindInternal {
		t.Fatalf("err = %v, want internal *SendError", err)
	}
	if !errors.Is(err, errProviderDown) {
		t.Fatalf("provider error not wrapped: %v", err)
	}
	if len(sender.Outbox()) != 0 {
		t.Fatalf("customer email sent after internal failure")
	}
	if len(rec.entries) != 1 || rec.entries[0].Status != deliverylog.StatusFailed {
		t.Fatalf("deliveries = %+v", rec.entries)
	}
	if got := testutil.ToFloat64(m.EmailsSent.WithLabelValues("internal", "error")); got != 1 {
		t.Fatalf("internal errors = %v", got)
	}
}

func TestDispatch_CustomerFailureAfterInternalSent(t *testing.T) {
	sender := &mail.InMemory{Fail: func(msg mail.Message) error {
		if msg.To == "sam@example.com" {
			return errors.New("mailbox full")
		}
		return nil
	}}
	d, m := newDispatcher(sender, nil)

	_, err := d.Dispatch(context.Background(), validRequest())
	var sendErr *SendError
	if !errors.As(err, &sendErr) || sendErr.Kind != deliverylog.KindCustomer {
		t.Fatalf("err = %v, want customer *SendError", err)
	}
	if !strings.Contains(err.Error(), "mailbox full") {
		t.Fatalf("err = %q", err)
	}
	if len(sender.Outbox()) != 1 {
		t.Fatalf("internal email should stay sent")
	}
	if got := testutil.ToFloat64(m.Submissions.WithLabelValues("failed")); got != 1 {
		t.Fatalf("failed submissions = %v", got)
	}
}

func TestDispatch_DeliveryLogFailureDoesNotFail(t *testing.T) {
	d, _ := newDispatcher(&mail.InMemory{}, &fakeRecorder{err: errors.New("disk full")})
	if _, err := d.Dispatch(context.Background(), validRequest()); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
}

func TestDispatch_InvalidRequestSendsNothing(t *testing.T) {
	sender := &mail.InMemory{}
	d, m := newDispatcher(sender, nil)
	if _, err := d.Dispatch(context.Background(), Request{}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	if len(sender.Outbox()) != 0 {
		t.Fatalf("emails sent for invalid request")
	}
	if got := testutil.ToFloat64(m.Submissions.WithLabelValues("invalid")); got != 1 {
		t.Fatalf("invalid submissions = %v", got)
	}
}

func TestCompose(t *testing.T) {
	form := quote.FormData{
		PropertyType:     quote.PropertyFlat,
		SelectedServices: []quote.Service{quote.ServicePainting},
		Painting:         &quote.PaintingData{Rooms: []quote.PaintingRoom{{Name: "Bedroom", Surfaces: quote.Surfaces{Walls: true}, Coats: 2}}},
	}
	details := contact.Normalize(contact.Details{FullName: "Sam Carter", Email: "sam@example.com", Address1: "1 High St", City: "York", Postcode: "yo1 7hh"})
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	c, err := Compose(form, details, Reference(now, "3f2b9c1a-0000"), now)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if c.Reference != "EBS-260201-3F2B9C" {
		t.Fatalf("reference = %q", c.Reference)
	}
	if err := c.Request.Normalize().Validate(); err != nil {
		t.Fatalf("composed request invalid: %v", err)
	}
	for _, html := range []string{c.Request.InternalEmailHTML, c.Request.CustomerEmailHTML} {
		if !strings.Contains(html, "<li>2 coat(s)</li>") || !strings.Contains(html, c.Reference) {
			t.Fatalf("email missing bullets or reference")
		}
	}
	if !strings.Contains(c.Request.InternalEmailHTML, "YO1 7HH") {
		t.Fatalf("internal email missing postcode")
	}
	if len(c.Quote.Services) != 1 || c.Sections[0].Name != "Painting & Decorating" {
		t.Fatalf("quote = %+v", c.Quote.Services)
	}
}
