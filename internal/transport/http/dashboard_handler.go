// Package http contains the chi handlers that expose the cleaned dataset's
// filtered aggregate views to the presentation layer.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "fundcli/internal/errors"
	"fundcli/internal/services"
	"fundcli/pkg/contracts/domain"
)

// DashboardHandler handles dashboard API requests.
type DashboardHandler struct {
	service  DashboardService
	logger   *slog.Logger
	validate *validator.Validate
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service:  service,
		logger:   logger.With(slog.String("component", "dashboard_handler")),
		validate: validator.New(),
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/dashboard", h.GetDashboard)
	r.Get("/filters", h.GetFilters)

	return r
}

// GetDashboard handles GET /api/dashboard. Query parameters year_from,
// year_to, cities (comma separated), amount_min and amount_max narrow the
// view; absent parameters fall back to the dataset's observed bounds and
// the default city selection.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bounds, err := h.service.FilterBounds(ctx)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	spec, apiErr := h.bindFilterSpec(r, bounds)
	if apiErr != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apiErr))
		return
	}

	if err := h.validate.Struct(spec); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			field := invalid[0]
			render.Render(w, r, apierrors.NewErrorResponse(
				apierrors.ErrValidation(field.Field(), "failed on '"+field.Tag()+"' constraint")))
			return
		}
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.InvalidRequestWithError(err)))
		return
	}

	data, err := h.service.Dashboard(ctx, spec)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "dashboard served",
		slog.String("request_id", middleware.GetReqID(ctx)),
		slog.Int("record_count", data.RecordCount))
	render.JSON(w, r, data)
}

// GetFilters handles GET /api/filters, returning the observed bounds and
// defaults the presentation layer builds its filter widgets from.
func (h *DashboardHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	bounds, err := h.service.FilterBounds(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, bounds)
}

// bindFilterSpec assembles a FilterSpec from query parameters, defaulting
// absent parameters from the dataset bounds.
func (h *DashboardHandler) bindFilterSpec(r *http.Request, bounds domain.FilterBounds) (domain.FilterSpec, *apierrors.APIError) {
	query := r.URL.Query()

	spec := domain.FilterSpec{
		YearFrom:  bounds.YearMin,
		YearTo:    bounds.YearMax,
		Cities:    bounds.DefaultCities,
		AmountMin: bounds.AmountMin,
		AmountMax: bounds.AmountMax,
	}
	if len(spec.Cities) == 0 {
		spec.Cities = bounds.Cities
	}

	if raw := query.Get("year_from"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return spec, apierrors.ErrValidation("year_from", "must be an integer year")
		}
		spec.YearFrom = year
	}
	if raw := query.Get("year_to"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return spec, apierrors.ErrValidation("year_to", "must be an integer year")
		}
		spec.YearTo = year
	}
	if raw := query.Get("amount_min"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return spec, apierrors.ErrValidation("amount_min", "must be a number")
		}
		spec.AmountMin = amount
	}
	if raw := query.Get("amount_max"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return spec, apierrors.ErrValidation("amount_max", "must be a number")
		}
		spec.AmountMax = amount
	}
	if raw := query.Get("cities"); raw != "" {
		var cities []string
		for _, city := range strings.Split(raw, ",") {
			if city = strings.TrimSpace(city); city != "" {
				cities = append(cities, city)
			}
		}
		if len(cities) == 0 {
			return spec, apierrors.ErrValidation("cities", "must name at least one city")
		}
		spec.Cities = cities
	}

	return spec, nil
}

func (h *DashboardHandler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotLoaded):
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrDatasetUnavailable))
	case errors.Is(err, services.ErrNoMatchingRecords):
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrNoMatchingRecords))
	default:
		h.logger.ErrorContext(r.Context(), "dashboard request failed",
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.InternalError(err)))
	}
}
