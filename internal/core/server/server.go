package server

import (
	"errors"
	"fmt"
	"time"

	"container-tracker/internal/core/config"
	"container-tracker/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "container-tracker/docs/swagger"
)

// rayHeader carries the request id back to clients and into every error body.
const rayHeader = "X-Ray-ID"

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a new Server with request ids, access logs, panic recovery and
// the API documentation mounted.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "container-tracker",
		ReadTimeout:           cfg.ReadTimeout(),
		WriteTimeout:          cfg.WriteTimeout(),
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header: rayHeader,
	}))

	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Environment != "production",
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Named("http").Error("Recovered from panic",
				zap.Any("panic", e),
				zap.String("path", c.Path()),
				zap.String("ray_id", rayID(c)),
			)
		},
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Named("http"),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// errorHandler renders errors that escaped the handlers (unknown routes,
// panics, body limits) in the same shape the handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		logger.Named("http").Error("Unhandled error",
			zap.String("path", c.Path()),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}

	return c.Status(code).JSON(fiber.Map{
		"message": message,
		"ray_id":  rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server",
		zap.String("address", addr),
		zap.Duration("read_timeout", s.cfg.ReadTimeout()),
		zap.Duration("write_timeout", s.cfg.WriteTimeout()),
	)
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	logger.Get().Info("Stopping server")
	return s.App.ShutdownWithTimeout(shutdownTimeout)
}
