package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"abc-retail-backend/internal/client"
	"abc-retail-backend/internal/config"
	"abc-retail-backend/internal/model"
	"abc-retail-backend/internal/queue"
	"abc-retail-backend/internal/repository"
	"abc-retail-backend/internal/server"
	"abc-retail-backend/internal/service"
	"abc-retail-backend/internal/table"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	mongoDB := client.InitMongoClient(cfg.Mongo.URL, cfg.Mongo.Database)

	var q queue.Queue
	if cfg.Storage.ConnectionString != "" {
		var err error
		q, err = queue.NewAzureQueue(cfg.Storage.ConnectionString)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("no storage connection string, using in-memory queue")
		q = queue.NewMemoryQueue()
	}

	products := table.NewTable[model.ProductEntity](mongoDB, "products", model.PartitionProduct)
	customers := table.NewTable[model.CustomerEntity](mongoDB, "customers", model.PartitionCustomer)
	legacyOrders := table.NewTable[model.OrderEntity](mongoDB, "orders", model.PartitionOrder)

	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	cartService := service.NewCartService(cartRepo, products)
	orderService := service.NewOrderService(
		orderRepo, userRepo,
		legacyOrders, products, customers,
		q, cfg.Storage.OrderNotificationsQueue, cfg.Storage.StockUpdatesQueue,
	)
	productService := service.NewProductService(products, q, cfg.Storage.StockUpdatesQueue)
	customerService := service.NewCustomerService(userRepo, customers)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(authService, cartService, orderService, productService, customerService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error:", err)
	}
}
