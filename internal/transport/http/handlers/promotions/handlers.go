package promotionhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
	"github.com/taninigeria-aa/mda-hr/internal/domain/promotion"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/api"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/middleware"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/shared"
)

type Handler struct {
	Promotions      *promotion.Service
	DefaultMinYears int
}

func NewHandler(promotions *promotion.Service, defaultMinYears int) *Handler {
	return &Handler{Promotions: promotions, DefaultMinYears: defaultMinYears}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/promotions", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{recordID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Post("/approve", h.handleApprove)
			r.Post("/implement", h.handleImplement)
		})
	})
	r.Route("/schedules", func(r chi.Router) {
		r.Get("/", h.handleListSchedules)
		r.Post("/", h.handleCreateSchedule)
		r.Route("/{scheduleID}", func(r chi.Router) {
			r.Get("/", h.handleGetSchedule)
			r.Post("/run", h.handleRunSchedule)
			r.Get("/shortlist", h.handleShortlist)
		})
	})
}

type createRecordPayload struct {
	EmployeeID    string `json:"employeeId"`
	NewGradeLevel string `json:"newGradeLevel"`
	NewRank       string `json:"newRank"`
	EffectiveDate string `json:"effectiveDate"`
	Remarks       string `json:"remarks"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("employeeId", payload.EmployeeID, "employeeId is required")
	validator.Required("newGradeLevel", payload.NewGradeLevel, "newGradeLevel is required")
	effective, _ := validator.Date("effectiveDate", payload.EffectiveDate)
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	rec, err := h.Promotions.CreateDraft(r.Context(), promotion.Record{
		EmployeeID:    payload.EmployeeID,
		NewGradeLevel: payload.NewGradeLevel,
		NewRank:       payload.NewRank,
		EffectiveDate: effective,
		Remarks:       payload.Remarks,
	})
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "promotion_create_failed", "failed to create promotion record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 500)
	records, err := h.Promotions.ListRecords(r.Context(), r.URL.Query().Get("employeeId"), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "promotion_list_failed", "failed to list promotion records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Promotions.GetRecord(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "promotion record not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

type approvePayload struct {
	ApprovedBy string `json:"approvedBy"`
	AsOf       string `json:"asOf"`
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	var payload approvePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	asOf := time.Now().UTC()
	if payload.AsOf != "" {
		parsed, err := shared.ParseDate(payload.AsOf)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_date", "asOf must be a valid date in YYYY-MM-DD format", middleware.GetRequestID(r.Context()))
			return
		}
		asOf = parsed
	}

	rec, err := h.Promotions.Approve(r.Context(), chi.URLParam(r, "recordID"), payload.ApprovedBy, asOf)
	if err != nil {
		h.failTransition(w, r, err)
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleImplement(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Promotions.Implement(r.Context(), chi.URLParam(r, "recordID"), time.Now().UTC())
	if err != nil {
		h.failTransition(w, r, err)
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

// failTransition maps lifecycle errors to HTTP statuses. An eligibility
// rejection is a 422 carrying the full reason list; a transition from the
// wrong state is a 409.
func (h *Handler) failTransition(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	var eligibilityErr *promotion.EligibilityError
	if errors.As(err, &eligibilityErr) {
		api.FailWithDetails(
			w,
			http.StatusUnprocessableEntity,
			"not_eligible",
			eligibilityErr.Error(),
			map[string]any{"reasons": eligibilityErr.Reasons},
			requestID,
		)
		return
	}

	var transitionErr *promotion.TransitionError
	if errors.As(err, &transitionErr) {
		api.Fail(w, http.StatusConflict, "invalid_transition", transitionErr.Error(), requestID)
		return
	}

	if errors.Is(err, promotion.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "promotion record not found", requestID)
		return
	}
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}

	api.Fail(w, http.StatusInternalServerError, "promotion_transition_failed", "failed to update promotion record", requestID)
}

type createSchedulePayload struct {
	Name            string `json:"name"`
	PromotionYear   int    `json:"promotionYear"`
	MinYearsInGrade int    `json:"minYearsInGrade"`
	ExamDate        string `json:"examDate"`
	InterviewStart  string `json:"interviewStart"`
	InterviewEnd    string `json:"interviewEnd"`
	BoardApproval   string `json:"boardApprovalDate"`
	EffectiveDate   string `json:"effectiveDate"`
}

func (h *Handler) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var payload createSchedulePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	if payload.PromotionYear < 2000 {
		validator.Add("promotionYear", "must be a four digit year")
	}
	if payload.MinYearsInGrade == 0 {
		payload.MinYearsInGrade = h.DefaultMinYears
	}
	if payload.MinYearsInGrade <= 0 {
		validator.Add("minYearsInGrade", "must be positive")
	}
	examDate, _ := validator.OptionalDate("examDate", payload.ExamDate)
	interviewStart, _ := validator.OptionalDate("interviewStart", payload.InterviewStart)
	interviewEnd, _ := validator.OptionalDate("interviewEnd", payload.InterviewEnd)
	boardApproval, _ := validator.OptionalDate("boardApprovalDate", payload.BoardApproval)
	effectiveDate, _ := validator.OptionalDate("effectiveDate", payload.EffectiveDate)
	if interviewStart != nil && interviewEnd != nil {
		validator.DateOrder("interviewStart", *interviewStart, "interviewEnd", *interviewEnd)
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	sched, err := h.Promotions.CreateSchedule(r.Context(), promotion.Schedule{
		Name:            payload.Name,
		PromotionYear:   payload.PromotionYear,
		MinYearsInGrade: payload.MinYearsInGrade,
		ExamDate:        examDate,
		InterviewStart:  interviewStart,
		InterviewEnd:    interviewEnd,
		BoardApproval:   boardApproval,
		EffectiveDate:   effectiveDate,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "schedule_create_failed", "failed to create schedule", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, sched, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Promotions.ListSchedules(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "schedule_list_failed", "failed to list schedules", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, schedules, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	sched, err := h.Promotions.GetSchedule(r.Context(), chi.URLParam(r, "scheduleID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "schedule not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, sched, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRunSchedule(w http.ResponseWriter, r *http.Request) {
	shortlisted, err := h.Promotions.RunSchedule(r.Context(), chi.URLParam(r, "scheduleID"), time.Now().UTC())
	if err != nil {
		if errors.Is(err, promotion.ErrScheduleNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "schedule not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "schedule_run_failed", "failed to run schedule", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"shortlisted": shortlisted,
		"count":       len(shortlisted),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleShortlist(w http.ResponseWriter, r *http.Request) {
	shortlist, err := h.Promotions.Shortlist(r.Context(), chi.URLParam(r, "scheduleID"))
	if err != nil {
		if errors.Is(err, promotion.ErrScheduleNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "schedule not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "shortlist_failed", "failed to load shortlist", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, shortlist, middleware.GetRequestID(r.Context()))
}
