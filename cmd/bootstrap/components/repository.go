package components

import (
	"banana-farm-api/internal/infra/cache"
	"banana-farm-api/internal/infra/readstore"
	"banana-farm-api/internal/infra/writerepo"
	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/usecase/commands"
	"banana-farm-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		writerepo.NewReservationRepository,
		func(r *writerepo.ReservationRepository) commands.ReservationRepository { return r },
		writerepo.NewFarmRepository,
		func(r *writerepo.FarmRepository) commands.FarmRepository { return r },
		func(r *writerepo.FarmRepository) commands.FarmReader { return r },
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			writerepo.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),

		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewFarmReadStore,
			fx.As(new(queries.FarmReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		readstore.NewVarietyReadStore,
		NewCachedVarietyReadStore,
	),
)

// NewCachedVarietyReadStore layers the Redis cache over the database store.
// With no Redis client the cache passes every read straight through.
func NewCachedVarietyReadStore(inner *readstore.VarietyReadStore, client *redis.Client, cfg config.Config) queries.VarietyReadStore {
	return cache.NewVarietyCache(inner, client, cfg.Redis.CacheTTL)
}
