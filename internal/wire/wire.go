// Package wire provides dependency injection for the stockroom application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/example/stockroom/internal/adapters/receipt"
	"github.com/example/stockroom/internal/adapters/sqlite"
	"github.com/example/stockroom/internal/app"
	"github.com/example/stockroom/internal/config"
	"github.com/example/stockroom/internal/db"
	"github.com/example/stockroom/internal/ports/primary"
)

var (
	clientService  primary.ClientService
	productService primary.ProductService
	orderService   primary.OrderService
	once           sync.Once
)

// ClientService returns the singleton ClientService instance.
func ClientService() primary.ClientService {
	once.Do(initServices)
	return clientService
}

// ProductService returns the singleton ProductService instance.
func ProductService() primary.ProductService {
	once.Do(initServices)
	return productService
}

// OrderService returns the singleton OrderService instance.
func OrderService() primary.OrderService {
	once.Do(initServices)
	return orderService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if os.Getenv("STOCKROOM_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Repository adapters (secondary ports) backed by the shared DB handle
	clientRepo := sqlite.NewClientRepository(database)
	productRepo := sqlite.NewProductRepository(database)
	orderRepo := sqlite.NewOrderRepository(database)

	receipts := receipt.NewFileWriter(cfg.ReceiptsDir)

	// Services (primary ports implementation)
	clientService = app.NewClientService(clientRepo)
	productService = app.NewProductService(productRepo)
	orderService = app.NewOrderService(orderRepo, clientRepo, productRepo, receipts, logger)
}
