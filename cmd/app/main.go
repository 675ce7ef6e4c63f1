package main

import (
	"fmt"
	"log/slog"
	"os"

	"warehouse/cmd"
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres/inventoryrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/robotrepo"
	"warehouse/internal/adapters/out/rabbitmq"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	publisher := createPublisher(configs, logger)

	root := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(root.CreateGetAllInventoryQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:    goDotEnvVariable("AMQP_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&robotrepo.RobotDTO{},
		&inventoryrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// createPublisher connects to the broker when AMQP_URL is set, otherwise
// order events are silently dropped.
func createPublisher(configs cmd.Config, logger *slog.Logger) ports.OrderEventPublisher {
	if configs.AmqpURL == "" {
		logger.Info("AMQP_URL not set, order events disabled")
		return rabbitmq.NewNoopOrderEventPublisher()
	}

	publisher, err := rabbitmq.NewOrderEventPublisher(configs.AmqpURL, logger)
	if err != nil {
		log.Fatalf("Failed to connect to message broker: %v", err)
	}
	return publisher
}

func startWebServer(root *cmd.CompositionRoot, logger *slog.Logger, port string) {
	server := httpin.NewServer(
		logger,
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateCreateRobotCommandHandler(),
		root.CreateUpdateRobotStatusCommandHandler(),
		root.CreateUpdateRobotCompletedOrdersCommandHandler(),
		root.CreateDeleteRobotCommandHandler(),
		root.CreateCreateInventoryItemCommandHandler(),
		root.CreateUpdateInventoryStockCommandHandler(),
		root.CreateDeleteInventoryItemCommandHandler(),
		root.CreateGetAllOrdersQueryHandler(),
		root.CreateGetOrderByIDQueryHandler(),
		root.CreateGetOrderStatsQueryHandler(),
		root.CreateHasActiveOrderForRobotQueryHandler(),
		root.CreateGetAllRobotsQueryHandler(),
		root.CreateGetRobotByIDQueryHandler(),
		root.CreateGetAllInventoryQueryHandler(),
		root.CreateGetInventoryItemByIDQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
