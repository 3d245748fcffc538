package jobs

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tubone24/eiga-miyou/internal/model"
	"github.com/tubone24/eiga-miyou/internal/venues"
)

// SeedVenueMappings loads the reference venue table if it is empty.
// Idempotent; safe to run on every startup.
func SeedVenueMappings(ctx context.Context, r venues.Resolver) error {
	if err := r.Seed(ctx); err != nil {
		return err
	}
	total := 0
	for _, provider := range []string{model.ProviderToho, model.ProviderCinema109, model.ProviderAeon} {
		rows, err := r.List(ctx, provider)
		if err != nil {
			return err
		}
		total += len(rows)
	}
	log.Info().Int("count", total).Msg("venue mappings ready")
	return nil
}
