// Package submission delivers a quote as two emails: a notification to the
// business and a summary to the customer.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Simplici0/ebs-estimator/internal/contact"
	"github.com/Simplici0/ebs-estimator/internal/deliverylog"
	"github.com/Simplici0/ebs-estimator/internal/mail"
	"github.com/Simplici0/ebs-estimator/internal/metrics"
)

var (
	ErrMissingFields = errors.New("missing fields: internalEmailHtml, customerEmailHtml, customerEmail are required")
	ErrInvalidEmail  = errors.New("invalid customerEmail")
)

const (
	DefaultCustomerName = "Customer"
	CustomerSubject     = "Your EBS Estimate Summary"
)

// InternalSubject is the subject of the business notification.
func InternalSubject(customerName string) string {
	return "New Quote Request — " + customerName
}

// Request is the send-email boundary payload: two pre-rendered documents and
// the customer's address.
type Request struct {
	InternalEmailHTML string `json:"internalEmailHtml"`
	CustomerEmailHTML string `json:"customerEmailHtml"`
	CustomerEmail     string `json:"customerEmail"`
	CustomerName      string `json:"customerName"`
}

// Normalize trims every field and defaults a blank name.
func (r Request) Normalize() Request {
	r.InternalEmailHTML = strings.TrimSpace(r.InternalEmailHTML)
	r.CustomerEmailHTML = strings.TrimSpace(r.CustomerEmailHTML)
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	if r.CustomerName == "" {
		r.CustomerName = DefaultCustomerName
	}
	return r
}

// Validate checks a normalized request.
func (r Request) Validate() error {
	if r.InternalEmailHTML == "" || r.CustomerEmailHTML == "" || r.CustomerEmail == "" {
		return ErrMissingFields
	}
	if !contact.ValidEmail(r.CustomerEmail) {
		return ErrInvalidEmail
	}
	return nil
}

// SendError reports which of the two emails failed.
type SendError struct {
	Kind deliverylog.Kind
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send %s email: %v", e.Kind, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// Result identifies a completed submission.
type Result struct {
	SubmissionID string `json:"submissionId"`
	InternalID   string `json:"internalId,omitempty"`
	CustomerID   string `json:"customerId,omitempty"`
}

// DeliveryRecorder stores email attempts.
type DeliveryRecorder interface {
	Record(ctx context.Context, d deliverylog.Delivery) (int64, error)
}

// Dispatcher sends the two emails of a submission in order. Each email gets
// one attempt; if the customer email fails after the internal one was sent,
// nothing is undone.
type Dispatcher struct {
	Sender     mail.Sender
	From       string
	InternalTo string
	Deliveries DeliveryRecorder
	Metrics    *metrics.Metrics
	Logger     zerolog.Logger
}

// Dispatch validates req and sends both emails. Validation failures return
// ErrMissingFields or ErrInvalidEmail; send failures return *SendError.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Result, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		d.Metrics.Submission("invalid")
		return Result{}, err
	}

	res := Result{SubmissionID: uuid.NewString()}
	log := d.Logger.With().Str("submission_id", res.SubmissionID).Logger()

	var err error
	res.InternalID, err = d.send(ctx, log, res.SubmissionID, deliverylog.KindInternal, mail.Message{
		From:    d.From,
		To:      d.InternalTo,
		ReplyTo: req.CustomerEmail,
		Subject: InternalSubject(req.CustomerName),
		HTML:    req.InternalEmailHTML,
	})
	if err != nil {
		d.Metrics.Submission("failed")
		return res, err
	}

	res.CustomerID, err = d.send(ctx, log, res.SubmissionID, deliverylog.KindCustomer, mail.Message{
		From:    d.From,
		To:      req.CustomerEmail,
		Subject: CustomerSubject,
		HTML:    req.CustomerEmailHTML,
	})
	if err != nil {
		d.Metrics.Submission("failed")
		return res, err
	}

	d.Metrics.Submission("ok")
	log.Info().Str("customer", req.CustomerEmail).Msg("submission_sent")
	return res, nil
}

func (d *Dispatcher) send(ctx context.Context, log zerolog.Logger, submissionID string, kind deliverylog.Kind, msg mail.Message) (string, error) {
	id, err := d.Sender.Send(ctx, msg)

	entry := deliverylog.Delivery{
		SubmissionID: submissionID,
		Kind:         kind,
		Recipient:    msg.To,
		Subject:      msg.Subject,
		Status:       deliverylog.StatusSent,
		ProviderID:   id,
	}
	if err != nil {
		entry.Status = deliverylog.StatusFailed
		entry.Error = err.Error()
		d.Metrics.EmailSent(string(kind), "error")
		log.Error().Err(err).Str("kind", string(kind)).Str("recipient", msg.To).Msg("email_send_failed")
	} else {
		d.Metrics.EmailSent(string(kind), "ok")
	}

	if d.Deliveries != nil {
		if _, recErr := d.Deliveries.Record(ctx, entry); recErr != nil {
			log.Warn().Err(recErr).Str("kind", string(kind)).Msg("delivery_log_failed")
		}
	}

	if err != nil {
		return "", &SendError{Kind: kind, Err: err}
	}
	return id, nil
}
