package v1

import (
	"net/http"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"

	"github.com/DrekStyler/handypro-api/config"
	"github.com/DrekStyler/handypro-api/internal/delivery/http/middleware"
	"github.com/DrekStyler/handypro-api/internal/delivery/http/response"
	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/validation"
)

type RouterDeps struct {
	UserUC           domain.UserUsecase
	CompanyProfileUC domain.CompanyProfileUsecase
	PortfolioUC      domain.PortfolioUsecase
	ProjectUC        domain.ProjectUsecase
	NotificationUC   domain.NotificationUsecase
	UserRepo         domain.UserRepository
	AuthClient       *fbauth.Client // nil in dev-secret mode
	Redis            *goredis.Client
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{deps.Config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthClient, deps.Config, deps.UserRepo))

	// Upload routes get their own rate limit on top of auth
	uploads := protected.Group("")
	uploads.Use(middleware.RateLimit(deps.Redis, middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitUploadThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:upload:",
	}))

	NewUserHandler(protected, deps.UserUC)
	NewCompanyProfileHandler(protected, uploads, deps.CompanyProfileUC, deps.Config)
	NewPortfolioHandler(protected, uploads, deps.PortfolioUC, deps.Config)
	NewProjectHandler(protected, deps.ProjectUC)
	NewNotificationHandler(protected, deps.NotificationUC)

	return r
}
