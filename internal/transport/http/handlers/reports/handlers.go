package reporthandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taninigeria-aa/mda-hr/internal/domain/promotion"
	"github.com/taninigeria-aa/mda-hr/internal/domain/reports"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/api"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/middleware"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/shared"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Reports: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/eligibility", h.handleEligibility)
		r.Get("/eligibility.pdf", h.handleEligibilityPDF)
		r.Get("/promotion-analysis", h.handlePromotionAnalysis)
		r.Get("/retirement", h.handleRetirement)
		r.Get("/retirement.pdf", h.handleRetirementPDF)
		r.Get("/geographical", h.handleGeographical)
		r.Get("/qualifications", h.handleQualifications)
		r.Get("/pension", h.handlePension)
	})
}

func (h *Handler) handleEligibility(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	rows, err := h.Reports.Eligibility(r.Context(), asOf)
	if err != nil {
		h.failReport(w, r, err, "eligibility_report_failed", "failed to build eligibility report")
		return
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEligibilityPDF(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	payload, err := h.Reports.EligibilityPDF(r.Context(), asOf)
	if err != nil {
		h.failReport(w, r, err, "eligibility_report_failed", "failed to build eligibility report")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=eligibility-report.pdf")
	_, _ = w.Write(payload)
}

func (h *Handler) handlePromotionAnalysis(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Reports.PromotionAnalysis(r.Context())
	if err != nil {
		h.failReport(w, r, err, "promotion_analysis_failed", "failed to build promotion analysis")
		return
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRetirement(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	schedule, err := h.Reports.Retirement(r.Context(), asOf)
	if err != nil {
		h.failReport(w, r, err, "retirement_report_failed", "failed to build retirement schedule")
		return
	}
	api.Success(w, schedule, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRetirementPDF(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	payload, err := h.Reports.RetirementPDF(r.Context(), asOf)
	if err != nil {
		h.failReport(w, r, err, "retirement_report_failed", "failed to build retirement schedule")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=retirement-schedule.pdf")
	_, _ = w.Write(payload)
}

func (h *Handler) handleGeographical(w http.ResponseWriter, r *http.Request) {
	dist, err := h.Reports.Geographical(r.Context())
	if err != nil {
		h.failReport(w, r, err, "geographical_report_failed", "failed to build geographical distribution")
		return
	}
	api.Success(w, dist, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleQualifications(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Reports.Qualifications(r.Context())
	if err != nil {
		h.failReport(w, r, err, "qualification_report_failed", "failed to build qualification analysis")
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePension(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.Pension(r.Context())
	if err != nil {
		h.failReport(w, r, err, "pension_report_failed", "failed to build pension compliance report")
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) asOf(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("asOf")
	if raw == "" {
		return time.Now().UTC(), true
	}
	parsed, err := shared.ParseDate(raw)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "asOf must be a valid date in YYYY-MM-DD format", middleware.GetRequestID(r.Context()))
		return time.Time{}, false
	}
	return parsed, true
}

func (h *Handler) failReport(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	var aggErr *promotion.AggregationError
	if errors.As(err, &aggErr) {
		api.Fail(w, http.StatusConflict, "unknown_employee", aggErr.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
}
