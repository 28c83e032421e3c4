package server

import (
	"github.com/cloudspace/csp/internal/controllers"
	"github.com/cyverse-de/echo-middleware/v2/redoc"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echolog "github.com/spirosoik/echo-logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func InitRouter() *echo.Echo {
	log := log.WithFields(logrus.Fields{"context": "router"})

	// Create the web server.
	e := echo.New()

	// Set a custom logger.
	echoLogger := echolog.NewLoggerMiddleware(log)
	e.Logger = echoLogger

	// Add middleware.
	e.Use(otelecho.Middleware("CSP"))
	e.Use(echoLogger.Hook())
	e.Use(middleware.Recover())
	e.Use(redoc.Serve(redoc.Opts{Title: "Cloud Space Provisioner"}))

	return e
}

func RegisterHandlers(s controllers.Server) {

	// The base URL acts as a health check endpoint.
	s.Router.GET("/", s.RootHandler)

	api := s.Router.Group("/api")

	// Lists the available plans and storage tiers.
	api.GET("/options", s.GetOptions)

	// Lists the provisioned projects, newest first.
	api.GET("/projects", s.GetProjects)

	// Provisions a new cloud space.
	api.POST("/project/create", s.CreateProject)
}
