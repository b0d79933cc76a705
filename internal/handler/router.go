package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/handler/api"
	"banana-farm-api/internal/handler/middleware"
	"banana-farm-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Farm        *api.FarmHandler
	Review      *api.ReviewHandler
	Variety     *api.VarietyHandler
	Detection   *api.DetectionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/detect", Handler: h.Detection.Detect},
			{Method: http.MethodGet, Path: "/varieties", Handler: h.Variety.ListVarieties},
			{Method: http.MethodGet, Path: "/varieties/:id", Handler: h.Variety.GetVariety},
			{Method: http.MethodGet, Path: "/farms", Handler: h.Farm.ListFarms},
		})

		farms := apiGroup.Group("/farms")
		{
			authed := farms.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Farm.ListMyFarms},
				{
					Method:  http.MethodPost,
					Path:    "",
					Handler: h.Farm.CreateFarm,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleFarmOwner)},
				},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Farm.UpdateFarm},
				{Method: http.MethodPost, Path: "/:id/image", Handler: h.Farm.UploadFarmImage},
			})

			addRoutes(farms, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Farm.GetFarm},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListFarmReviews},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMyReservations},
				{Method: http.MethodGet, Path: "/incoming", Handler: h.Reservation.ListIncomingReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.ConfirmReservation},
				{Method: http.MethodPost, Path: "/:id/ship", Handler: h.Reservation.ShipReservation},
				{Method: http.MethodPost, Path: "/:id/deliver", Handler: h.Reservation.DeliverReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.CancelReservation},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.CreateReview},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
