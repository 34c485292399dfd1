package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aptstay/apartment-booking-backend/internal/apartment"
	aptHttp "github.com/aptstay/apartment-booking-backend/internal/apartment/http"
	"github.com/aptstay/apartment-booking-backend/internal/auth"
	"github.com/aptstay/apartment-booking-backend/internal/booking"
	bookingHttp "github.com/aptstay/apartment-booking-backend/internal/booking/http"
	"github.com/aptstay/apartment-booking-backend/internal/chat"
	chatHttp "github.com/aptstay/apartment-booking-backend/internal/chat/http"
	"github.com/aptstay/apartment-booking-backend/internal/file"
	fileHttp "github.com/aptstay/apartment-booking-backend/internal/file/http"
	"github.com/aptstay/apartment-booking-backend/internal/user"
	userHttp "github.com/aptstay/apartment-booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService      user.Service
	ApartmentService apartment.Service
	BookingService   booking.Service
	FileService      file.Service
	ChatService      chat.Service

	JWTManager     *auth.JWTManager
	MaxUploadBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter assembles middleware (CORS, logging, auth, rate limiting) and
// registers the routes of every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)
	rateLimitMiddleware := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware()

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	aptHandler := aptHttp.NewHandler(cfg.ApartmentService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	fileHandler := fileHttp.NewHandler(cfg.FileService, cfg.MaxUploadBytes)
	chatHandler := chatHttp.NewHandler(cfg.ChatService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, rateLimitMiddleware)
		aptHttp.RegisterRoutes(v1, aptHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware, adminMiddleware)
		chatHttp.RegisterRoutes(v1, chatHandler, authMiddleware, rateLimitMiddleware)
	}

	return r
}
