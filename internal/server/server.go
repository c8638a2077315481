package server

import (
	"log"
	"strings"
	"time"

	"anoa.com/noorautomobiles/internal/config"
	"anoa.com/noorautomobiles/internal/handler"
	"anoa.com/noorautomobiles/internal/middleware"
	"anoa.com/noorautomobiles/internal/repository"
	"anoa.com/noorautomobiles/internal/service"
	"anoa.com/noorautomobiles/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

func NewServer(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *Server {
	mediaStorage := newMediaStorage(cfg)

	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	partRepo := repository.NewPartRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authSvc)

	carSvc := service.NewCarService(carRepo)
	carHandler := handler.NewCarHandler(carSvc)

	partSvc := service.NewPartService(partRepo)
	partHandler := handler.NewPartHandler(partSvc)

	inquirySvc := service.NewInquiryService(inquiryRepo, carRepo)
	inquiryHandler := handler.NewInquiryHandler(inquirySvc, rdb, cfg.InquiryRateLimit)

	uploadSvc := service.NewUploadService(mediaStorage)
	uploadHandler := handler.NewUploadHandler(uploadSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.MaxMultipartMemory = 100 << 20 // 100MB upload batches

	setupCORS(router, cfg)

	if cfg.StorageDriver == "local" {
		router.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "message": "Noor Automobiles API is running"})
	})

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	api.GET("/cars", carHandler.GetAllCars)
	api.GET("/cars/:id", carHandler.GetCarByID)
	api.GET("/cars/meta/brands", carHandler.GetBrands)

	api.GET("/parts", partHandler.GetAllParts)
	api.GET("/parts/:id", partHandler.GetPartByID)
	api.GET("/parts/categories", partHandler.GetCategories)

	api.POST("/inquiries", inquiryHandler.SubmitInquiry)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/cars", carHandler.CreateCar)
			admin.PUT("/cars/reorder", carHandler.ReorderCars)
			admin.PUT("/cars/:id", carHandler.UpdateCar)
			admin.DELETE("/cars/:id", carHandler.DeleteCar)
			admin.POST("/cars/upload", uploadHandler.UploadCarFiles)

			admin.POST("/parts", partHandler.CreatePart)
			admin.PUT("/parts/:id", partHandler.UpdatePart)
			admin.DELETE("/parts/:id", partHandler.DeletePart)
			admin.POST("/parts/upload", uploadHandler.UploadPartFiles)

			admin.GET("/inquiries", inquiryHandler.GetAllInquiries)
			admin.GET("/inquiries/:id", inquiryHandler.GetInquiryByID)
			admin.PUT("/inquiries/:id/status", inquiryHandler.UpdateInquiryStatus)
			admin.DELETE("/inquiries/:id", inquiryHandler.DeleteInquiry)
		}
	}

	return &Server{
		engine: router,
		cfg:    cfg,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func newMediaStorage(cfg *config.Config) storage.MediaStorage {
	if cfg.StorageDriver == "cloudinary" {
		store, err := storage.NewCloudinaryStorage()
		if err != nil {
			log.Fatalf("failed to initialize cloudinary storage: %v", err)
		}
		return store
	}

	store, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("failed to initialize local storage: %v", err)
	}
	return store
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
