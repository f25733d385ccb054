package server

import (
	"context"
	"net/http"
	"time"

	"fitclub/internal/auth"
	"fitclub/internal/availability"
	"fitclub/internal/config"
	"fitclub/internal/engine"
	"fitclub/internal/groupclass"
	"fitclub/internal/registration"
	"fitclub/internal/room"

	"github.com/gin-gonic/gin"
)

// Repositories is the storage the API runs on.
type Repositories struct {
	// Name is reported by /health: "postgres" or "memory".
	Name          string
	Rooms         room.Repository
	Availability  availability.Repository
	Classes       groupclass.Repository
	Registrations registration.Repository
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(repos Repositories, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	roomService := room.NewService(repos.Rooms)
	windowService := availability.NewService(repos.Availability)
	classService := groupclass.NewService(repos.Classes, cfg.Location)
	registrationService := registration.NewService(repos.Registrations, cfg.Location)

	admissions := engine.New(windowService, classService, registrationService)

	authHandler := auth.NewHandler(cfg.JWTSecret, cfg.JWTRefreshSecret)
	roomHandler := room.NewHandler(roomService)
	windowHandler := availability.NewHandler(windowService)
	classHandler := groupclass.NewHandler(classService)
	registrationHandler := registration.NewHandler(registrationService)
	engineHandler := engine.NewHandler(admissions)

	router.GET("/health", Health(repos.Name))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	public := router.Group("/auth")
	{
		public.POST("/refresh", authHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/rooms", roomHandler.ListRooms)
		protected.GET("/rooms/:roomID", roomHandler.GetRoom)
		protected.GET("/classes", classHandler.ListUpcoming)
		protected.GET("/classes/:classID", classHandler.GetClass)
		protected.GET("/trainers/:trainerID/availability", windowHandler.ListForTrainer)
	}

	member := router.Group("/")
	member.Use(authMiddleware, auth.RequireRole(auth.RoleMember))
	{
		member.POST("/classes/:classID/register", engineHandler.ProposeRegistration)
		member.GET("/registrations", registrationHandler.ListMine)
	}

	trainer := router.Group("/trainer")
	trainer.Use(authMiddleware, auth.RequireRole(auth.RoleTrainer))
	{
		trainer.POST("/availability", engineHandler.ProposeWindow)
		trainer.GET("/availability", windowHandler.ListMine)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/rooms", roomHandler.CreateRoom)
		admin.POST("/classes", engineHandler.ProposeBooking)
	}

	return &Server{
		router: router,
		config: cfg,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
