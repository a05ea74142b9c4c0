package di

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Emmanuel-365/event-app/internal/handler"
	"github.com/Emmanuel-365/event-app/internal/notifier"
	"github.com/Emmanuel-365/event-app/internal/repository"
	"github.com/Emmanuel-365/event-app/internal/service"
	"github.com/Emmanuel-365/event-app/pkg/config"
	"github.com/Emmanuel-365/event-app/pkg/database"
	"github.com/Emmanuel-365/event-app/pkg/logger"
	"github.com/Emmanuel-365/event-app/pkg/middleware"
)

// Container wires repositories, services and handlers together
type Container struct {
	Config *config.Config
	Logger *logger.Logger
	DB     *database.Postgres

	EventRepo        repository.EventRepository
	SubscriptionRepo repository.SubscriptionRepository
	CategoryRepo     repository.TicketCategoryRepository
	UserRepo         repository.UserRepository
	StatsRepo        repository.StatsRepository

	Notifier notifier.Notifier

	AuthService         service.AuthService
	EventService        service.EventService
	CategoryService     service.TicketCategoryService
	SubscriptionService service.SubscriptionService
	StatsService        service.StatsService

	AuthHandler         *handler.AuthHandler
	EventHandler        *handler.EventHandler
	SubscriptionHandler *handler.SubscriptionHandler
	StatsHandler        *handler.StatsHandler
	HealthHandler       *handler.HealthHandler
}

// New builds the container from configuration
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	db, err := database.NewPostgres(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: log, DB: db}

	c.EventRepo = repository.NewPostgresEventRepository(db.Pool)
	c.SubscriptionRepo = repository.NewPostgresSubscriptionRepository(db.Pool)
	c.CategoryRepo = repository.NewPostgresTicketCategoryRepository(db.Pool)
	c.UserRepo = repository.NewPostgresUserRepository(db.Pool)
	c.StatsRepo = repository.NewPostgresStatsRepository(db.Pool)

	if cfg.MailEnabled() {
		c.Notifier = notifier.NewSMTPNotifier(&cfg.SMTP)
	} else {
		log.Warn("SMTP not configured, ticket emails are disabled")
		c.Notifier = notifier.NewNoOpNotifier()
	}

	codes := service.NewTicketCodeGenerator(c.SubscriptionRepo, cfg.Tickets.CodeMaxAttempts)

	c.AuthService = service.NewAuthService(c.UserRepo, &cfg.JWT, log)
	c.EventService = service.NewEventService(c.EventRepo, log)
	c.CategoryService = service.NewTicketCategoryService(c.CategoryRepo, c.EventRepo, log)
	c.SubscriptionService = service.NewSubscriptionService(
		c.SubscriptionRepo, c.EventRepo, c.CategoryRepo, c.UserRepo, codes, c.Notifier, log,
	)
	c.StatsService = service.NewStatsService(c.StatsRepo, c.EventRepo)

	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.EventHandler = handler.NewEventHandler(c.EventService, c.CategoryService)
	c.SubscriptionHandler = handler.NewSubscriptionHandler(c.SubscriptionService)
	c.StatsHandler = handler.NewStatsHandler(c.StatsService)
	c.HealthHandler = handler.NewHealthHandler(db)

	return c, nil
}

// Router builds the HTTP routing tree
func (c *Container) Router() *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger())

	r.GET("/health/live", c.HealthHandler.Live)
	r.GET("/health/ready", c.HealthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/me", middleware.Auth(c.Config.JWT.Secret), c.AuthHandler.Profile)
	}

	// Public catalog
	api.GET("/events", c.EventHandler.List)
	api.GET("/events/:id", c.EventHandler.Get)
	api.GET("/events/:id/categories", c.EventHandler.ListCategories)
	api.GET("/stats/trending", c.StatsHandler.Trending)
	api.GET("/stats/locations", c.StatsHandler.TopLocations)

	secured := api.Group("")
	secured.Use(middleware.Auth(c.Config.JWT.Secret))
	{
		secured.GET("/events/mine/list", c.EventHandler.ListMine)
		secured.POST("/events", c.EventHandler.Create)
		secured.PUT("/events/:id", c.EventHandler.Update)
		secured.DELETE("/events/:id", c.EventHandler.Delete)
		secured.POST("/events/:id/categories", c.EventHandler.CreateCategory)
		secured.PUT("/categories/:id", c.EventHandler.UpdateCategory)
		secured.DELETE("/categories/:id", c.EventHandler.DeleteCategory)

		secured.POST("/subscriptions", c.SubscriptionHandler.Reserve)
		secured.GET("/subscriptions", c.SubscriptionHandler.ListMine)
		secured.GET("/subscriptions/:id", c.SubscriptionHandler.Get)
		secured.POST("/subscriptions/:id/confirm", c.SubscriptionHandler.ConfirmPayment)
		secured.DELETE("/subscriptions/:id", c.SubscriptionHandler.Cancel)
		secured.GET("/events/:id/subscriptions", c.SubscriptionHandler.ListForEvent)
		secured.POST("/tickets/validate", c.SubscriptionHandler.ValidateAtDoor)

		secured.GET("/events/:id/stats", c.StatsHandler.EventStats)
		secured.GET("/stats/organizer", c.StatsHandler.OrganizerStats)
		secured.GET("/stats/monthly", c.StatsHandler.MonthlyStats)
		secured.GET("/stats/recommendations", c.StatsHandler.Recommendation)
		secured.GET("/stats/recommendations/locations", c.StatsHandler.BestLocations)
		secured.GET("/stats/recommendations/months", c.StatsHandler.BestMonths)
	}

	return r
}

// Close releases held resources
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
