package main

import (
	"log"
	"time"

	"restaurant_api/internal/config"
	"restaurant_api/internal/database"
	"restaurant_api/internal/handlers"
	"restaurant_api/internal/middleware"
	"restaurant_api/internal/models"
	"restaurant_api/internal/redis"
	"restaurant_api/internal/repository"
	"restaurant_api/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, redisClient, time.Duration(cfg.TokenTTL)*time.Second)
	roleService := services.NewRoleService(roleRepo, userRepo)
	menuService := services.NewMenuService(menuRepo)
	cartService := services.NewCartService(cartRepo, menuRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, roleRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	groupHandler := handlers.NewGroupHandler(roleService)
	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.Identity(authService))
	router.Use(middleware.Throttle(redisClient, cfg.AnonRatePerMinute, cfg.UserRatePerMinute))

	// Auth endpoints
	router.POST("/auth/users/", authHandler.Register)
	router.POST("/auth/token/login/", authHandler.Login)
	router.POST("/auth/token/logout/", middleware.RequireAuth(), authHandler.Logout)

	// Menu catalog
	router.GET("/menu-items/", menuHandler.ListItems)
	router.POST("/menu-items/", middleware.RequireAuth(), menuHandler.CreateItem)
	router.GET("/menu-items/category/", menuHandler.ListCategories)
	router.POST("/menu-items/category/", middleware.RequireAuth(), menuHandler.CreateCategory)
	router.GET("/menu-items/:id/", menuHandler.GetItem)
	router.PATCH("/menu-items/:id/", middleware.RequireAuth(), menuHandler.ToggleFeatured)
	router.DELETE("/menu-items/:id/", middleware.RequireAuth(), menuHandler.DeleteItem)

	// Staff rosters
	manager := router.Group("/groups/manager/users", middleware.RequireAuth())
	{
		manager.GET("/", groupHandler.ListMembers(models.RoleManager))
		manager.POST("/", groupHandler.AddMember(models.RoleManager))
		manager.GET("/:id/", groupHandler.GetMember(models.RoleManager))
		manager.DELETE("/:id/", groupHandler.RemoveMember(models.RoleManager))
	}
	crew := router.Group("/groups/delivery-crew/users", middleware.RequireAuth())
	{
		crew.GET("/", groupHandler.ListMembers(models.RoleDeliveryCrew))
		crew.POST("/", groupHandler.AddMember(models.RoleDeliveryCrew))
		crew.GET("/:id/", groupHandler.GetMember(models.RoleDeliveryCrew))
		crew.DELETE("/:id/", groupHandler.RemoveMember(models.RoleDeliveryCrew))
	}

	// Cart
	cart := router.Group("/cart", middleware.RequireAuth())
	{
		cart.GET("/menu-items/", cartHandler.ViewCart)
		cart.POST("/menu-items/", cartHandler.AddToCart)
		cart.DELETE("/menu-items/", cartHandler.ClearCart)
	}

	// Orders
	orders := router.Group("/orders", middleware.RequireAuth())
	{
		orders.GET("/", orderHandler.ListOrders)
		orders.POST("/", orderHandler.PlaceOrder)
		orders.GET("/:id/", orderHandler.GetOrder)
		orders.PATCH("/:id/", orderHandler.UpdateOrder)
		orders.PUT("/:id/", orderHandler.UpdateOrder)
		orders.DELETE("/:id/", orderHandler.DeleteOrder)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
