package routes

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"payment-proxy/internal/adapter/http/handlers"
	"payment-proxy/internal/config"
	"payment-proxy/internal/infrastructure/upstream"
)

// RunEdge starts the public edge proxy in front of the core API.
func RunEdge() {
	cfg := config.MustLoadEdge()

	router := NewEdgeRouter(cfg)

	log.Printf("[edge] listening port=%s upstream=%s", cfg.Edge.Port, cfg.Edge.UpstreamURL)
	if err := router.Run(":" + cfg.Edge.Port); err != nil {
		log.Fatalf("Failed to startup the edge proxy: %v", err.Error())
	}
}

// NewEdgeRouter builds the edge engine: CORS, a health probe and a relay for
// every proxied route. The edge holds the upstream API key; its own callers
// send none.
func NewEdgeRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
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
	router.Use(cors.New(corsCfg))

	edgeHandler := handlers.NewEdgeHandler(upstream.NewForwarder(cfg.Edge))

	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	for _, path := range []string{
		"/pay-request",
		"/pay-complete",
		"/pay-result",
		"/refund-request",
		"/send-otp",
	} {
		api.POST(path, edgeHandler.Relay)
	}
	return router
}
