package main

import (
	_ "logistics_backoffice/docs"
	"logistics_backoffice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Logistics Back Office API
// @version         1.0
// @description     Shipments, logistics expenses and back office accounts backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the API token.

func main() {
	routes.Run()
}
