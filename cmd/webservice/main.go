package main

import (
	"log"

	"github.com/pazarlabs/pazar/config"
	"github.com/pazarlabs/pazar/internal/app"
	"github.com/pazarlabs/pazar/internal/infrastructure/database/jsonfile"
	postgresDriver "github.com/pazarlabs/pazar/internal/infrastructure/database/postgres"
	kafkaDriver "github.com/pazarlabs/pazar/internal/infrastructure/message-queue/kafka"
	"github.com/pazarlabs/pazar/internal/infrastructure/storage/local"
	"github.com/pazarlabs/pazar/internal/repository"
	"github.com/segmentio/kafka-go"
)

func main() {
	config := config.CreateNewConfig()

	var userRepo repository.UserRepository
	var productRepo repository.ProductRepository

	switch config.StorageBackend {
	case "postgres":
		db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
		if err != nil {
			log.Fatalf("Failed to connect to the database: %v", err)
		}

		userRepo = repository.CreateNewUserPostgresRepository(db)
		productRepo = repository.CreateNewProductPostgresRepository(db)
	default:
		store, err := jsonfile.CreateNewStore(config.DataDir)
		if err != nil {
			log.Fatalf("Failed to open the data directory: %v", err)
		}

		userRepo = repository.CreateNewUserJSONFileRepository(store)
		productRepo = repository.CreateNewProductJSONFileRepository(store)
	}

	storage, err := local.CreateNewStorage(config.UploadDir)
	if err != nil {
		log.Fatalf("Failed to open the upload directory: %v", err)
	}

	var kafkaConn *kafka.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaConn, err = kafkaDriver.CreateKafkaProducer(config)
		if err != nil {
			log.Fatalf("Failed to connect to the message broker: %v", err)
		}
	}

	server := app.App{
		Config:      config,
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Storage:     storage,
		KafkaConn:   kafkaConn,
	}

	server.Start()
}
