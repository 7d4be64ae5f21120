package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "payment-proxy/docs"
	"payment-proxy/internal/adapter/http/routes"
)

// @title           Payment Proxy API
// @version         1.0
// @description     Thin HTTP proxy in front of a card payment provider and an SMS gateway.

// @host localhost:3001

// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

func main() {
	routes.Run()
}
