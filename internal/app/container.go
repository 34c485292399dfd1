package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aptstay/apartment-booking-backend/internal/apartment"
	"github.com/aptstay/apartment-booking-backend/internal/api"
	"github.com/aptstay/apartment-booking-backend/internal/auth"
	"github.com/aptstay/apartment-booking-backend/internal/booking"
	"github.com/aptstay/apartment-booking-backend/internal/chat"
	"github.com/aptstay/apartment-booking-backend/internal/file"
	"github.com/aptstay/apartment-booking-backend/internal/pkg/storage"
	"github.com/aptstay/apartment-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	StoragePath    string
	MaxUploadBytes int64

	ChatAPIKey  string
	ChatBaseURL string
	ChatModel   string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Shared components
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	blobStore, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init blob storage failed: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Apartment module
	aptRepo := apartment.NewPgxRepository(cfg.DBPool)
	aptService := apartment.NewService(aptRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, aptService)

	// File module
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, blobStore)

	// Chat module
	chatService := chat.NewService(cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel)

	router := api.NewRouter(api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		UserService:      userService,
		ApartmentService: aptService,
		BookingService:   bookingService,
		FileService:      fileService,
		ChatService:      chatService,
		JWTManager:       jwtManager,
		MaxUploadBytes:   cfg.MaxUploadBytes,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
