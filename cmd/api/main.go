package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-api/internal/handler"
	"go-warehouse-api/internal/middleware"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Transaction{},
		&model.User{},
	); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	wsHub := ws.NewHub()
	go wsHub.Run()

	// Wiring
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	seedAdminUser(userRepo)

	catalogService := service.NewCatalogService(productRepo, categoryRepo, supplierRepo, wsHub)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	invService := service.NewInventoryService(productRepo, txRepo, db, wsHub)
	authService := service.NewAuthService(userRepo)
	reportService := service.NewReportService(productRepo, txRepo)

	productHandler := handler.NewProductHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	txHandler := handler.NewTransactionHandler(invService)
	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService)

	app := fiber.New(fiber.Config{
		AppName: "Warehouse API v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/change-password", authHandler.ChangePassword)

	// Everything below requires a bearer token.
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/auth/me", authHandler.Me)

	protected.Get("/products", productHandler.List)
	protected.Post("/products", productHandler.Create)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	protected.Get("/categories", categoryHandler.List)
	protected.Post("/categories", categoryHandler.Create)
	protected.Put("/categories/:id", categoryHandler.Update)
	protected.Delete("/categories/:id", categoryHandler.Delete)

	protected.Get("/suppliers", supplierHandler.List)
	protected.Post("/suppliers", supplierHandler.Create)
	protected.Put("/suppliers/:id", supplierHandler.Update)
	protected.Delete("/suppliers/:id", supplierHandler.Delete)

	protected.Get("/transactions", txHandler.List)
	protected.Post("/transactions", txHandler.Create)

	protected.Get("/reports/inventory-value", reportHandler.InventoryValue)
	protected.Get("/reports/low-stock", reportHandler.LowStock)
	protected.Get("/reports/out-of-stock", reportHandler.OutOfStock)
	protected.Get("/reports/transactions-summary", reportHandler.TransactionSummary)
	protected.Get("/reports/stock-movement", reportHandler.StockMovement)

	// WebSocket endpoint for live stock updates
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep-alive loop; clients only listen.
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdminUser creates the default admin account on first boot so the web
// client has something to log in with.
func seedAdminUser(userRepo repository.UserRepository) {
	const email = "admin@example.com"

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	admin := &model.User{
		Name:  "Administrator",
		Email: email,
		Role:  model.RoleAdmin,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
		return
	}
	log.Println("Admin user created: admin@example.com / admin123")
}
