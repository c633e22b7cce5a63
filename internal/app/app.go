package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pazarlabs/pazar/config"
	"github.com/pazarlabs/pazar/internal/controller"
	"github.com/pazarlabs/pazar/internal/infrastructure/storage/local"
	"github.com/pazarlabs/pazar/internal/infrastructure/tracing"
	appmiddleware "github.com/pazarlabs/pazar/internal/middleware"
	"github.com/pazarlabs/pazar/internal/repository"
	"github.com/pazarlabs/pazar/internal/service"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/pazarlabs/pazar/pkg/mailer"
	"github.com/pazarlabs/pazar/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const loginPath = "/login"

type App struct {
	Config      *config.Config
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Storage     *local.Storage
	KafkaConn   *kafka.Conn
	Server      *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("pazar")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(app.Config.SessionSecret))))

	// Anonymous requests to protected routes land here.
	e.GET(loginPath, func(c echo.Context) error {
		return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
	})

	e.Static(local.ServePrefix, app.Storage.Dir())

	g := e.Group("/api/v1")
	g.Use(appmiddleware.Logger)

	identitySvc := service.CreateNewIdentityService(app.UserRepo, *app.Config, app.KafkaConn, mailer.CreateNewMailer(app.Config))
	catalogSvc := service.CreateNewCatalogService(app.ProductRepo, *app.Config, app.Storage, app.KafkaConn)

	gate := appmiddleware.SessionGate(identitySvc, app.Config.JWTSecret, loginPath)

	controller.CreateAuthController(g, identitySvc, gate)
	controller.CreateProductController(g, catalogSvc, gate)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
