package main

import (
	"fmt"
	"log"
	"os"

	"salonmanager-app/config"
	"salonmanager-app/models"
	"salonmanager-app/routes"
	"salonmanager-app/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Monetary values serialize as JSON numbers, formatted to two decimals
	// only at the boundary.
	decimal.MarshalJSONWithoutQuotes = true

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Collaborator{},
		&models.Procedure{},
		&models.PriceConfig{},
		&models.ServiceRecord{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewClosingService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
