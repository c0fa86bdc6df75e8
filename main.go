package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/auth"
	"github.com/velmart/velmart-api/config"
	"github.com/velmart/velmart-api/controllers"
	"github.com/velmart/velmart-api/initializers"
	"github.com/velmart/velmart-api/routes"
	"github.com/velmart/velmart-api/services"
)

func main() {
	initializers.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initializers.ConnectToDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatalf("Failed to sync database: %v", err)
	}

	accounts := services.NewAccountService(db, cfg.AdminEmails)
	carts := services.NewCartService(db)
	orders := services.NewOrderService(db)
	verifier := auth.NewGoogleVerifier(cfg.GoogleClientID)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server, controllers.NewDefaultController(cfg))
	routes.AuthRoutes(server, controllers.NewAuthController(accounts, verifier, cfg))
	routes.ProductRoutes(server, controllers.NewProductController(db, cfg), cfg.JWTSecret)
	routes.CartRoutes(server, controllers.NewCartController(carts), cfg.JWTSecret)
	routes.OrderRoutes(server, controllers.NewOrderController(orders), cfg.JWTSecret)
	routes.FavoriteRoutes(server, controllers.NewFavoriteController(db), cfg.JWTSecret)
	routes.ProfileRoutes(server, controllers.NewProfileController(accounts), cfg.JWTSecret)
	routes.AdminRoutes(server, controllers.NewAdminController(accounts), cfg.JWTSecret)

	log.Printf("Google OAuth enabled: %v", cfg.GoogleAuthEnabled())
	log.Printf("Admin emails configured: %d", len(cfg.AdminEmails))

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
