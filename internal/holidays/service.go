package holidays

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"almanac/internal/calendar"
	"almanac/internal/domain"
	"almanac/internal/holidays/metrics"
	"almanac/internal/jurisdiction"
	"almanac/internal/registry"
	dErrors "almanac/pkg/domain-errors"
	"almanac/pkg/platform/sentinel"
	"almanac/pkg/requestcontext"
)

// Catalog is the part of the jurisdiction registry the service reads.
type Catalog interface {
	Resolve(identifier string) (jurisdiction.Country, bool)
	Parse(identifier string) (jurisdiction.Jurisdiction, bool)
	Countries() []jurisdiction.Country
	Info(c jurisdiction.Country) (jurisdiction.CountryInfo, bool)
	SubdivisionInfos(c jurisdiction.Country) []jurisdiction.SubdivisionInfo
	AllQualified() []jurisdiction.Qualified
	Model(j jurisdiction.Jurisdiction) (jurisdiction.Model, error)
}

var _ Catalog = (*registry.Registry)(nil)

const defaultPrecomputeLimit = 8

// Service answers holiday queries against a Catalog. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	catalog         Catalog
	logger          *slog.Logger
	metrics         *metrics.Metrics
	tracer          trace.Tracer
	precomputeLimit int
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithPrecomputeLimit bounds the goroutines Precompute runs at once.
func WithPrecomputeLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.precomputeLimit = n
		}
	}
}

// New constructs a Service.
func New(catalog Catalog, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	s := &Service{
		catalog:         catalog,
		tracer:          otel.Tracer("almanac/holidays"),
		precomputeLimit: defaultPrecomputeLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CountrySummary is a catalog country with its subdivision count.
type CountrySummary struct {
	jurisdiction.CountryInfo
	Subdivisions int `json:"subdivisions"`
}

func (s *Service) Resolve(identifier string) (jurisdiction.Country, bool) {
	return s.catalog.Resolve(identifier)
}

func (s *Service) Parse(identifier string) (jurisdiction.Jurisdiction, bool) {
	return s.catalog.Parse(identifier)
}

// Countries lists the catalog in declaration order.
func (s *Service) Countries() []CountrySummary {
	countries := s.catalog.Countries()
	out := make([]CountrySummary, 0, len(countries))
	for _, c := range countries {
		info, ok := s.catalog.Info(c)
		if !ok {
			continue
		}
		out = append(out, CountrySummary{
			CountryInfo:  info,
			Subdivisions: len(s.catalog.SubdivisionInfos(c)),
		})
	}
	return out
}

// Subdivisions returns the subdivision enumeration of a country identifier.
func (s *Service) Subdivisions(identifier string) ([]jurisdiction.SubdivisionInfo, error) {
	c, ok := s.catalog.Resolve(identifier)
	if !ok {
		return nil, dErrors.Wrap(registry.ErrUnresolvedIdentifier, dErrors.CodeNotFound, "unknown country "+identifier)
	}
	subs := s.catalog.SubdivisionInfos(c)
	if subs == nil {
		subs = []jurisdiction.SubdivisionInfo{}
	}
	return subs, nil
}

// Catalog lists every jurisdiction the service can compute: each country
// followed by its subdivisions.
func (s *Service) Catalog() []jurisdiction.Jurisdiction {
	qualified := s.catalog.AllQualified()
	countries := s.catalog.Countries()
	out := make([]jurisdiction.Jurisdiction, 0, len(countries)+len(qualified))

	i := 0
	for _, c := range countries {
		out = append(out, c)
		for ; i < len(qualified) && qualified[i].Country == c; i++ {
			out = append(out, qualified[i])
		}
	}
	return out
}

// Holidays returns the ordered, de-duplicated holidays of j in year.
func (s *Service) Holidays(ctx context.Context, j jurisdiction.Jurisdiction, year int) ([]domain.Holiday, error) {
	ctx, span := s.tracer.Start(ctx, "holidays.Holidays", trace.WithAttributes(
		attribute.String("jurisdiction", idOf(j)),
		attribute.Int("year", year),
	))
	defer span.End()

	start := time.Now()
	hs, err := s.compute(j, year)
	country := countryOf(j)
	if dErrors.HasCode(err, dErrors.CodeNotFound) {
		country = "unknown"
	}
	s.metrics.ObserveCompute(kindOf(j), country, outcomeOf(err), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "holiday computation failed")
		s.logFailure(ctx, j, year, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("holidays", len(hs)))
	if s.logger != nil {
		s.logger.DebugContext(ctx, "holidays computed",
			"jurisdiction", idOf(j),
			"year", year,
			"count", len(hs),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return hs, nil
}

// HolidaysOn returns the holidays of j falling on date. An empty result means
// date is not a holiday there.
func (s *Service) HolidaysOn(ctx context.Context, j jurisdiction.Jurisdiction, date calendar.Date) ([]domain.Holiday, error) {
	if !date.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid date "+date.String())
	}
	hs, err := s.Holidays(ctx, j, date.Year)
	if err != nil {
		return nil, err
	}
	out := []domain.Holiday{}
	for _, h := range hs {
		if h.Date == date {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *Service) compute(j jurisdiction.Jurisdiction, year int) ([]domain.Holiday, error) {
	if err := calendar.CheckYear(year); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, err.Error())
	}
	model, err := s.catalog.Model(j)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "unknown jurisdiction "+idOf(j))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load jurisdiction")
	}
	hs, err := Compute(model, year)
	if err != nil {
		if calendar.IsDateRange(err) {
			return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, err.Error())
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to compute holidays")
	}
	return hs, nil
}

func (s *Service) logFailure(ctx context.Context, j jurisdiction.Jurisdiction, year int, err error) {
	if s.logger == nil {
		return
	}
	level := slog.LevelInfo
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, "holiday computation failed",
		"jurisdiction", idOf(j),
		"year", year,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
}

func idOf(j jurisdiction.Jurisdiction) string {
	if j == nil {
		return ""
	}
	return j.ID()
}

func countryOf(j jurisdiction.Jurisdiction) string {
	if j == nil {
		return ""
	}
	return j.CountryCode().String()
}

func kindOf(j jurisdiction.Jurisdiction) string {
	if q, ok := j.(jurisdiction.Qualified); ok && !q.Subdivision.IsNone() {
		return "subdivision"
	}
	return "national"
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case dErrors.HasCode(err, dErrors.CodeInternal):
		return "error"
	default:
		return "rejected"
	}
}
