package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"place-booking/internal/handler/api"
	reqdto "place-booking/internal/handler/dto/request"
	"place-booking/internal/handler/middleware"
	"place-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	taxonomyHandler *api.TaxonomyHandler,
	authMiddleware *middleware.AuthMiddleware,
) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, taxonomyHandler, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	taxonomyHandler *api.TaxonomyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	manageTaxonomy := []gin.HandlerFunc{authMiddleware.RequireTaxonomyManager()}

	bookings := apiGroup.Group("/bookings")
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
			{Method: http.MethodPut, Path: "/:id/schedule", Handler: bookingHandler.Reschedule},
		})
	}

	addRoutes(apiGroup, []route{
		{Method: http.MethodGet, Path: "/locations", Handler: taxonomyHandler.ListLocations},
		{Method: http.MethodPost, Path: "/locations", Handler: taxonomyHandler.CreateLocation, Mw: manageTaxonomy},
		{Method: http.MethodGet, Path: "/resource-types", Handler: taxonomyHandler.ListResourceTypes},
		{Method: http.MethodPost, Path: "/resource-types", Handler: taxonomyHandler.CreateResourceType, Mw: manageTaxonomy},
		{Method: http.MethodGet, Path: "/resource-types/:id/tags", Handler: taxonomyHandler.ListTagsByType},
		{Method: http.MethodPost, Path: "/tags", Handler: taxonomyHandler.CreateTag, Mw: manageTaxonomy},
	})

	resources := apiGroup.Group("/resources")
	{
		addRoutes(resources, []route{
			{Method: http.MethodGet, Path: "", Handler: taxonomyHandler.ListResources},
			{Method: http.MethodPost, Path: "", Handler: taxonomyHandler.CreateResource, Mw: manageTaxonomy},
			{Method: http.MethodGet, Path: "/:id", Handler: taxonomyHandler.GetResource},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: bookingHandler.ListForResource},
			{Method: http.MethodPut, Path: "/:id/tags/:tagId", Handler: taxonomyHandler.AttachTag, Mw: manageTaxonomy},
		})
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
