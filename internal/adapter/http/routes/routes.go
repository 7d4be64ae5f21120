package routes

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"payment-proxy/internal/adapter/http/handlers"
	"payment-proxy/internal/adapter/http/middleware"
	"payment-proxy/internal/config"
	"payment-proxy/internal/infrastructure/payments"
	"payment-proxy/internal/infrastructure/sms"
	"payment-proxy/internal/usecase"
)

// Run wires the configuration, clients, usecases and handlers together and
// starts the API server.
func Run() {
	cfg := config.MustLoad()

	router := NewRouter(cfg)

	log.Printf("[server] listening port=%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the fully wired engine without starting it. Split out of
// Run so tests can exercise the real route table.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(router, cfg)
	return router
}

func registerRoutes(router *gin.Engine, cfg *config.Config) {
	providerClient := payments.NewProviderClient(cfg.Provider)
	gatewayClient := sms.NewGatewayClient(cfg.SMS)

	paymentUseCase := usecase.NewPaymentUseCase(providerClient)
	smsUseCase := usecase.NewSMSUseCase(gatewayClient)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	smsHandler := handlers.NewSMSHandler(smsUseCase)

	// Liveness stays outside the key check so probes need no credentials.
	router.GET("/health", handlers.Health)

	api := router.Group("/api",
		middleware.APIKeyAuth(cfg.Server.APISecretKey),
		middleware.RateLimit(cfg.Server.RateLimitPeriod(), cfg.Server.RateLimitMax),
	)
	addPaymentRoutes(api, paymentHandler)
	addSMSRoutes(api, smsHandler)
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsCfg := cors.DefaultConfig()
	if origins := cfg.Server.Origins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.APIKeyHeader)
	router.Use(cors.New(corsCfg))
}
