package components

import (
	"banana-farm-api/internal/handler"
	"banana-farm-api/internal/handler/api"
	"banana-farm-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewFarmHandler,
		api.NewReviewHandler,
		api.NewVarietyHandler,
		api.NewDetectionHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	farm *api.FarmHandler,
	review *api.ReviewHandler,
	variety *api.VarietyHandler,
	detection *api.DetectionHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Farm:        farm,
		Review:      review,
		Variety:     variety,
		Detection:   detection,
	}
}
