package components

import (
	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/usecase"
	"banana-farm-api/internal/usecase/commands"
	"banana-farm-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewFarmCommands,
		commands.NewReviewCommands,
		commands.NewDetectionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewFarmQueries,
		queries.NewReviewQueries,
		queries.NewVarietyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
