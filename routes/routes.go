package routes

import (
	"go-shopcart/controllers"
	"go-shopcart/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application. adminOnly
// additionally gates product mutations behind the admin role.
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, auth mux.MiddlewareFunc, adminOnly bool) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(auth)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")

	// Product mutation routes
	mutate := router.PathPrefix("/products").Subrouter()
	mutate.Use(auth)
	if adminOnly {
		mutate.Use(middleware.RequireAdmin)
	}
	mutate.HandleFunc("", productController.CreateProduct).Methods("POST")
	mutate.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	mutate.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")

	// Cart routes
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/{id}", cartController.RemoveFromCart).Methods("DELETE")
}
