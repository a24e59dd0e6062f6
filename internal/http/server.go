package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pboachie/pi-lotto/internal/http/handlers"
	"github.com/pboachie/pi-lotto/internal/http/middleware"
	"github.com/pboachie/pi-lotto/internal/infrastructure/auth"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	jwtService     auth.JWTService
	userHandler    *handlers.UserHandler
	paymentHandler *handlers.PaymentHandler
	gameHandler    *handlers.GameHandler
	errorHandler   *middleware.ErrorHandler
	addr           string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	paymentHandler *handlers.PaymentHandler,
	gameHandler *handlers.GameHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	addr string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:         router,
		jwtService:     jwtService,
		userHandler:    userHandler,
		paymentHandler: paymentHandler,
		gameHandler:    gameHandler,
		errorHandler:   errorHandler,
		addr:           addr,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signin", s.userHandler.SignIn)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.userHandler.GetUserInfo)
				userRoutes.GET("/me/balance", s.userHandler.GetBalance)
			}

			paymentRoutes := protected.Group("/payments")
			{
				paymentRoutes.POST("/deposits", s.paymentHandler.CreateDeposit)
				paymentRoutes.POST("/approve", s.paymentHandler.ApprovePayment)
				paymentRoutes.POST("/complete", s.paymentHandler.CompletePayment)
				paymentRoutes.POST("/incomplete", s.paymentHandler.IncompletePayment)
				paymentRoutes.POST("/withdraw", s.paymentHandler.Withdraw)
			}

			lottoRoutes := protected.Group("/lotto")
			{
				lottoRoutes.GET("/pool", s.gameHandler.GetLottoPool)
				lottoRoutes.GET("/game-types", s.gameHandler.ListGameTypes)
				lottoRoutes.GET("/games", s.gameHandler.ListGames)
				lottoRoutes.GET("/games/:id", s.gameHandler.GetGame)
				lottoRoutes.POST("/games/:id/quote", s.gameHandler.QuoteTicket)
				lottoRoutes.POST("/tickets/submit", s.gameHandler.SubmitTicket)
				lottoRoutes.GET("/tickets", s.gameHandler.ListTickets)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.router.Run(s.addr)
}
