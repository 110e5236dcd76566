package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go-shopcart/config"
	"go-shopcart/controllers"
	"go-shopcart/middleware"
	"go-shopcart/routes"
	"go-shopcart/utils"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	if client == nil {
		log.Fatal("Could not create MongoDB client")
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	if err := utils.EnsureIndexes(client, cfg.DBName); err != nil {
		log.Printf("Error creating indexes: %v", err)
	}

	// Initialize services
	tokens := utils.NewTokenService(cfg.JWTSecret)
	emailService := utils.NewEmailService(cfg.SendGridKey, cfg.EmailSender)

	// Initialize controllers
	userController := controllers.NewUserController(client, cfg.DBName, tokens, emailService)
	productController := controllers.NewProductController(client, cfg.DBName)
	cartController := controllers.NewCartController(client, cfg.DBName)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, cartController,
		middleware.NewAuthMiddleware(tokens), cfg.AdminOnlyProducts)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
