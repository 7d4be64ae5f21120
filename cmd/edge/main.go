package main

import (
	_ "github.com/joho/godotenv/autoload"

	"payment-proxy/internal/adapter/http/routes"
)

func main() {
	routes.RunEdge()
}
