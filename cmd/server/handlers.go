package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/Simplici0/ebs-estimator/internal/breakdown"
	"github.com/Simplici0/ebs-estimator/internal/contact"
	"github.com/Simplici0/ebs-estimator/internal/deliverylog"
	"github.com/Simplici0/ebs-estimator/internal/logging"
	"github.com/Simplici0/ebs-estimator/internal/metrics"
	"github.com/Simplici0/ebs-estimator/internal/quote"
	"github.com/Simplici0/ebs-estimator/internal/report"
	"github.com/Simplici0/ebs-estimator/internal/submission"
	"github.com/Simplici0/ebs-estimator/internal/wizard"
)

const (
	livenessMessage      = "sendEmail API is alive (use POST)"
	maxDeliveriesLimit   = 500
	missingFieldsMessage = "Missing fields: internalEmailHtml, customerEmailHtml, customerEmail are required"
)

type server struct {
	log        zerolog.Logger
	dispatcher *submission.Dispatcher
	validator  *contact.Validator
	metrics    *metrics.Metrics
	registry   *prometheus.Registry
	deliveries *deliverylog.Store

	opsToken     string
	liveness     bool
	corsOrigins  []string
	maxBodyBytes int64
	rate         limiter.Rate
	now          func() time.Time
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger{Logger: s.log}.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(s.metrics.Middleware)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	if s.opsToken != "" && s.deliveries != nil {
		r.With(s.requireOpsToken).Get("/ops/deliveries", s.handleDeliveries)
	}

	limited := stdlib.NewMiddleware(
		limiter.New(memory.NewStore(), s.rate),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "Too many requests"})
		}),
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.limitBody)
		r.Post("/quote", s.handleQuote)
		r.Post("/quote/pdf", s.handleQuotePDF)
		r.Post("/wizard", s.handleWizard)
		r.With(limited.Handler).Post("/quote/submit", s.handleQuoteSubmit)

		// The catch-all must be registered before the method routes it falls back from.
		r.HandleFunc("/send-email", s.handleMethodNotAllowed)
		r.With(limited.Handler).Post("/send-email", s.handleSendEmail)
		r.Get("/send-email", s.handleSendEmailLiveness)
	})
	return r
}

type errorBody struct {
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.maxBodyBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// decodeBody writes the 4xx response itself and reports whether decoding succeeded.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "Request body too large"})
		return false
	}
	writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON body", Details: err.Error()})
	return false
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.deliveries != nil {
		if err := s.deliveries.Ping(r.Context()); err != nil {
			s.log.Error().Err(err).Msg("readiness_check_failed")
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "delivery log unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

func (s *server) requireOpsToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.opsToken)) != 1 {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleDeliveries lists the newest delivery log rows; limit defaults to 50.
func (s *server) handleDeliveries(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxDeliveriesLimit)
	}
	rows, err := s.deliveries.Recent(r.Context(), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("list_deliveries_failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "delivery log unavailable"})
		return
	}
	if rows == nil {
		rows = []deliverylog.Delivery{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"deliveries": rows})
}

type quoteResponse struct {
	Quote   quote.Quote         `json:"quote"`
	Modules []breakdown.Section `json:"modules"`
}

func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var form quote.FormData
	if !decodeBody(w, r, &form) {
		return
	}
	q, sections := breakdown.Build(form)
	s.metrics.QuoteCalculated()
	writeJSON(w, http.StatusOK, quoteResponse{Quote: q, Modules: sections})
}

func (s *server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	var form quote.FormData
	if !decodeBody(w, r, &form) {
		return
	}
	q, sections := breakdown.Build(form)
	s.metrics.QuoteCalculated()
	out, err := report.PDF(report.Data{
		SubmittedAt:  s.now(),
		PropertyType: form.PropertyType,
		Quote:        q,
		Sections:     sections,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("render_pdf_failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Could not render estimate"})
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="ebs-estimate.pdf"`)
	_, _ = w.Write(out)
}

func (s *server) handleWizard(w http.ResponseWriter, r *http.Request) {
	var req wizard.Request
	if !decodeBody(w, r, &req) {
		return
	}
	view, err := wizard.Apply(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type quoteSubmitRequest struct {
	FormData quote.FormData  `json:"formData"`
	Contact  contact.Details `json:"contact"`
}

type quoteSubmitResponse struct {
	Success      bool        `json:"success"`
	Reference    string      `json:"reference"`
	SubmissionID string      `json:"submissionId"`
	Quote        quote.Quote `json:"quote"`
}

// handleQuoteSubmit is the server-rendered path: the contact form is checked
// here and both emails are rendered from the form rather than posted by the client.
func (s *server) handleQuoteSubmit(w http.ResponseWriter, r *http.Request) {
	var req quoteSubmitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	details := contact.Normalize(req.Contact)
	if fields := s.validator.Validate(details); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Please correct the highlighted fields", Fields: fields})
		return
	}

	now := s.now()
	composed, err := submission.Compose(req.FormData, details, submission.Reference(now, uuid.NewString()), now)
	if err != nil {
		s.log.Error().Err(err).Msg("render_email_failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Could not render estimate"})
		return
	}
	s.metrics.QuoteCalculated()

	res, err := s.dispatcher.Dispatch(context.WithoutCancel(r.Context()), composed.Request)
	if err != nil {
		s.writeDispatchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteSubmitResponse{
		Success:      true,
		Reference:    composed.Reference,
		SubmissionID: res.SubmissionID,
		Quote:        composed.Quote,
	})
}

func (s *server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var req submission.Request
	if !decodeBody(w, r, &req) {
		return
	}
	// Both emails go out even if the client disconnects between them.
	if _, err := s.dispatcher.Dispatch(context.WithoutCancel(r.Context()), req); err != nil {
		s.writeDispatchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *server) writeDispatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, submission.ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: missingFieldsMessage})
	case errors.Is(err, submission.ErrInvalidEmail):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid customerEmail"})
	default:
		details := err.Error()
		var sendErr *submission.SendError
		if errors.As(err, &sendErr) {
			details = sendErr.Err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Email send failed", Details: details})
	}
}

func (s *server) handleSendEmailLiveness(w http.ResponseWriter, r *http.Request) {
	if !s.liveness {
		s.handleMethodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}{OK: true, Message: livenessMessage})
}

func (s *server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
}
