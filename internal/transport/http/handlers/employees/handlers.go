package employeehandler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
	"github.com/taninigeria-aa/mda-hr/internal/domain/promotion"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/api"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/middleware"
	"github.com/taninigeria-aa/mda-hr/internal/transport/http/shared"
)

type Handler struct {
	Employees  *employee.Service
	Promotions *promotion.Service
}

func NewHandler(employees *employee.Service, promotions *promotion.Service) *Handler {
	return &Handler{Employees: employees, Promotions: promotions}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
			r.Get("/facts", h.handleFacts)
			r.Post("/facts/refresh", h.handleRefreshFacts)
			r.Get("/eligibility", h.handleEligibility)
			r.Get("/history", h.handleHistory)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 500)
	status := r.URL.Query().Get("status")

	employees, total, err := h.Employees.List(r.Context(), status, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"employees": employees,
		"total":     total,
		"limit":     page.Limit,
		"offset":    page.Offset,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Employees.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Employees.Create(r.Context(), payload)
	if err != nil {
		h.failWrite(w, r, err, "employee_create_failed", "failed to create employee")
		return
	}

	// Derived facts are cached on write so list views never recompute them.
	if _, err := h.Promotions.RefreshFacts(r.Context(), id, time.Now().UTC()); err != nil {
		log.Printf("facts refresh after create failed: %v", err)
	}

	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Employees.Update(r.Context(), employeeID, payload); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		h.failWrite(w, r, err, "employee_update_failed", "failed to update employee")
		return
	}

	if _, err := h.Promotions.RefreshFacts(r.Context(), employeeID, time.Now().UTC()); err != nil {
		log.Printf("facts refresh after update failed: %v", err)
	}

	emp, err := h.Employees.Get(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Employees.Delete(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleFacts(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	facts, err := h.Promotions.Facts(r.Context(), chi.URLParam(r, "employeeID"), asOf)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "facts_failed", "failed to compute facts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, facts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRefreshFacts(w http.ResponseWriter, r *http.Request) {
	facts, err := h.Promotions.RefreshFacts(r.Context(), chi.URLParam(r, "employeeID"), time.Now().UTC())
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "facts_refresh_failed", "failed to refresh facts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, facts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEligibility(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	eligible, reasons, err := h.Promotions.CheckEligibility(r.Context(), chi.URLParam(r, "employeeID"), asOf)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "eligibility_failed", "failed to check eligibility", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"eligible": eligible,
		"reasons":  reasons,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 500)
	records, err := h.Promotions.ListRecords(r.Context(), chi.URLParam(r, "employeeID"), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "history_failed", "failed to list promotion history", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

// asOf reads the optional asOf query parameter, defaulting to now.
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

func (h *Handler) failWrite(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	var validationErr *employee.ValidationError
	if errors.As(err, &validationErr) {
		api.FailWithDetails(
			w,
			http.StatusBadRequest,
			"validation_error",
			"payload validation failed",
			map[string]any{"fields": validationErr.Issues},
			middleware.GetRequestID(r.Context()),
		)
		return
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		api.Fail(w, http.StatusConflict, "employee_exists", "employee file number already exists", middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
}
