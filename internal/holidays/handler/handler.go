package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"almanac/internal/calendar"
	"almanac/internal/domain"
	"almanac/internal/holidays"
	"almanac/internal/jurisdiction"
	dErrors "almanac/pkg/domain-errors"
	"almanac/pkg/platform/httputil"
	strutil "almanac/pkg/platform/strings"
	"almanac/pkg/requestcontext"
)

// Service defines the holiday operations the handler exposes.
type Service interface {
	Parse(identifier string) (jurisdiction.Jurisdiction, bool)
	Countries() []holidays.CountrySummary
	Subdivisions(identifier string) ([]jurisdiction.SubdivisionInfo, error)
	Catalog() []jurisdiction.Jurisdiction
	Holidays(ctx context.Context, j jurisdiction.Jurisdiction, year int) ([]domain.Holiday, error)
	HolidaysOn(ctx context.Context, j jurisdiction.Jurisdiction, date calendar.Date) ([]domain.Holiday, error)
	Precompute(ctx context.Context, js []jurisdiction.Jurisdiction, years []int) ([]holidays.Calendar, error)
}

// maxBatchJurisdictions caps the jurisdictions of one /calendars request.
const maxBatchJurisdictions = 64

// Handler wires holiday endpoints to the holiday service.
type Handler struct {
	service     Service
	logger      *slog.Logger
	maxYearSpan int
}

// New constructs a holiday handler. maxYearSpan bounds the years of one
// /calendars request.
func New(service Service, logger *slog.Logger, maxYearSpan int) *Handler {
	return &Handler{
		service:     service,
		logger:      logger,
		maxYearSpan: maxYearSpan,
	}
}

// Register mounts holiday endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleHealth)
	r.Get("/countries", h.HandleCountries)
	r.Get("/countries/{code}/subdivisions", h.HandleSubdivisions)
	r.Get("/jurisdictions", h.HandleJurisdictions)
	r.Get("/holidays/{jurisdiction}/{year}", h.HandleHolidays)
	r.Get("/holidays/{jurisdiction}/on/{date}", h.HandleHolidaysOn)
	r.Get("/calendars", h.HandleCalendars)
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleCountries handles GET /countries.
func (h *Handler) HandleCountries(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Countries())
}

// HandleSubdivisions handles GET /countries/{code}/subdivisions.
func (h *Handler) HandleSubdivisions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.Subdivisions(chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, subs)
}

// HandleJurisdictions handles GET /jurisdictions.
func (h *Handler) HandleJurisdictions(w http.ResponseWriter, _ *http.Request) {
	catalog := h.service.Catalog()
	resp := make([]JurisdictionResponse, 0, len(catalog))
	for _, j := range catalog {
		resp = append(resp, FromJurisdiction(j))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleHolidays handles GET /holidays/{jurisdiction}/{year}.
func (h *Handler) HandleHolidays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	j, err := h.parseJurisdiction(chi.URLParam(r, "jurisdiction"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	hs, err := h.service.Holidays(ctx, j, year)
	if err != nil {
		h.logError(ctx, "holiday lookup failed", j, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &HolidaysResponse{
		Jurisdiction: FromJurisdiction(j),
		Year:         year,
		Holidays:     hs,
	})
}

// HandleHolidaysOn handles GET /holidays/{jurisdiction}/on/{date}.
func (h *Handler) HandleHolidaysOn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	j, err := h.parseJurisdiction(chi.URLParam(r, "jurisdiction"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	raw := chi.URLParam(r, "date")
	date, err := calendar.ParseDate(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "date must be YYYY-MM-DD, got "+raw))
		return
	}

	hs, err := h.service.HolidaysOn(ctx, j, date)
	if err != nil {
		h.logError(ctx, "holiday check failed", j, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &HolidaysOnResponse{
		Jurisdiction: FromJurisdiction(j),
		Date:         date.String(),
		IsHoliday:    len(hs) > 0,
		Holidays:     hs,
	})
}

// HandleCalendars handles GET /calendars?jurisdictions=DE,us-ca&from=2024&to=2026.
func (h *Handler) HandleCalendars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	codes := strutil.SplitCodes(q.Get("jurisdictions"))
	if len(codes) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "jurisdictions is required"))
		return
	}
	if len(codes) > maxBatchJurisdictions {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("at most %d jurisdictions per request", maxBatchJurisdictions)))
		return
	}
	js := make([]jurisdiction.Jurisdiction, 0, len(codes))
	for _, code := range codes {
		j, err := h.parseJurisdiction(code)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		js = append(js, j)
	}

	years, err := h.parseYearRange(q.Get("from"), q.Get("to"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	calendars, err := h.service.Precompute(ctx, js, years)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "batch computation failed",
				"request_id", requestcontext.RequestID(ctx),
				"jurisdictions", len(js),
				"years", len(years),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &CalendarsResponse{Calendars: calendars})
}

func (h *Handler) parseJurisdiction(raw string) (jurisdiction.Jurisdiction, error) {
	j, ok := h.service.Parse(raw)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "unknown jurisdiction "+raw)
	}
	return j, nil
}

func parseYear(raw string) (int, error) {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "year must be an integer, got "+raw)
	}
	return year, nil
}

// parseYearRange reads an inclusive range; to defaults to from.
func (h *Handler) parseYearRange(rawFrom, rawTo string) ([]int, error) {
	if rawFrom == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "from is required")
	}
	from, err := parseYear(rawFrom)
	if err != nil {
		return nil, err
	}
	to := from
	if rawTo != "" {
		if to, err = parseYear(rawTo); err != nil {
			return nil, err
		}
	}
	if to < from {
		return nil, dErrors.New(dErrors.CodeBadRequest, "to must not be before from")
	}
	if span := to - from + 1; span > h.maxYearSpan {
		return nil, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("year range spans %d years, at most %d allowed", span, h.maxYearSpan))
	}

	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years, nil
}

func (h *Handler) logError(ctx context.Context, msg string, j jurisdiction.Jurisdiction, err error) {
	if !dErrors.HasCode(err, dErrors.CodeInternal) {
		return
	}
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"jurisdiction", j.ID(),
		"error", err,
	)
}
