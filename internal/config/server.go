package config

import (
	"ProjectInkwell/database/postgres"
	activityHandler "ProjectInkwell/internal/api/activity/handler"
	activityRepository "ProjectInkwell/internal/api/activity/repository"
	activityService "ProjectInkwell/internal/api/activity/service"
	blogHandler "ProjectInkwell/internal/api/blog/handler"
	blogRepository "ProjectInkwell/internal/api/blog/repository"
	blogService "ProjectInkwell/internal/api/blog/service"
	engagementHandler "ProjectInkwell/internal/api/engagement/handler"
	engagementRepository "ProjectInkwell/internal/api/engagement/repository"
	engagementService "ProjectInkwell/internal/api/engagement/service"
	outreachHandler "ProjectInkwell/internal/api/outreach/handler"
	outreachRepository "ProjectInkwell/internal/api/outreach/repository"
	outreachService "ProjectInkwell/internal/api/outreach/service"
	userHandler "ProjectInkwell/internal/api/user/handler"
	userRepository "ProjectInkwell/internal/api/user/repository"
	userService "ProjectInkwell/internal/api/user/service"
	"ProjectInkwell/internal/middleware"
	"ProjectInkwell/pkg/s3"
	"ProjectInkwell/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler
	s3Client   s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.Config{
			RequireAuth: os.Getenv("AUTH_REQUIRED") == "true",
		})
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// User Domain
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.New(s.log, userRepo, s.utils)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	// The admin gate resolves roles through the user service
	s.middleware.SetRoleResolver(userServices)

	// Audit Trail
	activityRepo := activityRepository.New(s.db, s.log)
	activityServices := activityService.New(s.log, activityRepo, s.utils)
	activityHandlers := activityHandler.New(s.log, s.middleware, activityServices)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogsService(s.log, blogRepo, s.s3Client, s.utils, activityServices)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	// Engagement Views
	engagementRepo := engagementRepository.New(s.db, s.log)
	engagementServices := engagementService.New(s.log, engagementRepo)
	engagementHandlers := engagementHandler.New(s.log, s.middleware, engagementServices)

	// Outreach
	outreachRepo := outreachRepository.New(s.db, s.log)
	outreachServices := outreachService.New(s.log, outreachRepo, s.utils)
	outreachHandlers := outreachHandler.New(s.log, s.validator, s.middleware, outreachServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, userHandlers, activityHandlers, blogHandlers, engagementHandlers, outreachHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
