package holidays

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"almanac/internal/domain"
	"almanac/internal/jurisdiction"
)

// Calendar is the computed holiday list of one jurisdiction for one year.
type Calendar struct {
	Jurisdiction string           `json:"jurisdiction"`
	Year         int              `json:"year"`
	Holidays     []domain.Holiday `json:"holidays"`
}

// Precompute evaluates every jurisdiction for every year concurrently. Results
// are ordered jurisdiction-major, years in the order given. The first failure
// cancels the remaining work.
func (s *Service) Precompute(ctx context.Context, js []jurisdiction.Jurisdiction, years []int) ([]Calendar, error) {
	ctx, span := s.tracer.Start(ctx, "holidays.Precompute")
	defer span.End()

	start := time.Now()
	results := make([]Calendar, len(js)*len(years))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.precomputeLimit)

	for i, j := range js {
		for k, year := range years {
			slot := i*len(years) + k
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				hs, err := s.Holidays(ctx, j, year)
				if err != nil {
					return err
				}
				results[slot] = Calendar{Jurisdiction: idOf(j), Year: year, Holidays: hs}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.metrics.ObservePrecompute(len(results), time.Since(start))
	if s.logger != nil {
		s.logger.InfoContext(ctx, "precompute finished",
			"jurisdictions", len(js),
			"years", len(years),
			"duration", time.Since(start),
		)
	}
	return results, nil
}
