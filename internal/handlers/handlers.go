package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"unistay/api/internal/config"
	"unistay/api/internal/middleware"
	"unistay/api/internal/models"
	"unistay/api/internal/repository"
	"unistay/api/internal/service"
	"unistay/api/internal/storage"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	auth     *service.AuthService
	accounts *service.AccountService
	stats    *service.StatsService
	db       *pgxpool.Pool
	cache    *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	users := repository.NewUserRepository(db)

	return HandlerSet{
		log:      log,
		cfg:      cfg,
		auth:     service.NewAuthService(users, cfg, log),
		accounts: service.NewAccountService(users, store, log),
		stats:    service.NewStatsService(users, cache, log),
		db:       db,
		cache:    cache,
	}
}

// StatsService exposes the stats service for the background scheduler.
func (h HandlerSet) StatsService() *service.StatsService {
	return h.stats
}

// Register wires every route. Pages under /dashboard, /agent and /admin sit
// behind the page gate; /api/protected sits behind the API gate. Everything
// else is public.
func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/api/healthz", h.Health)

	auth := engine.Group("/api/auth")
	auth.POST("/register", h.RegisterAccount)
	auth.POST("/login",
		middleware.LoginRateLimit(h.cache, h.cfg.Security.LoginMaxAttempts, h.cfg.Security.LoginWindow),
		h.Login,
	)
	auth.POST("/logout", h.Logout)

	api := engine.Group("/api/protected", middleware.APIGate())
	api.GET("/me", h.Me)
	api.POST("/me/avatar", h.UploadAvatar)

	admin := api.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/stats", h.PlatformStats)
	admin.GET("/agents/pending", h.PendingAgents)
	admin.POST("/agents/:id/verify", h.VerifyAgent)

	engine.GET("/", h.HomePage)
	engine.GET("/auth", h.AuthPage)
	engine.GET("/properties", h.PropertiesPage)
	engine.GET("/property/:id", h.PropertyPage)
	engine.GET("/blog", h.BlogPage)
	engine.GET("/contact", h.ContactPage)

	gated := engine.Group("/", middleware.PageGate())
	gated.GET("/dashboard", h.DashboardPage)
	gated.GET("/agent/dashboard", h.AgentDashboardPage)
	gated.GET("/admin/dashboard", h.AdminDashboardPage)
}
