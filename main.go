package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/matsuri-platform/venue-service/config"
	"github.com/matsuri-platform/venue-service/internal/consumer"
	"github.com/matsuri-platform/venue-service/internal/handler"
	"github.com/matsuri-platform/venue-service/internal/middleware"
	"github.com/matsuri-platform/venue-service/internal/repository"
	"github.com/matsuri-platform/venue-service/internal/service"
	"github.com/matsuri-platform/venue-service/pkg/database"
	"github.com/matsuri-platform/venue-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: booth assignment notifications to vendors
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// RabbitMQ consumer: sync vendor applications from Vendor Service
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	vendorConsumer := consumer.NewVendorConsumer(db)
	vendorConsumer.Start(msgs)

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	boothRepo := repository.NewBoothRepository(db)
	elementRepo := repository.NewElementRepository(db)
	vendorRepo := repository.NewVendorApplicationRepository(db)

	// Services
	venueSvc := service.NewVenueService(venueRepo, areaRepo, boothRepo, elementRepo)
	boothSvc := service.NewBoothService(boothRepo, areaRepo, venueRepo, vendorRepo, publisher)
	layoutSvc := service.NewLayoutService(elementRepo, venueRepo, service.AllowAll{})

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "venue-service"})
	})

	api := e.Group("/api/v1")
	handler.NewVenueHandler(venueSvc).RegisterRoutes(api)
	handler.NewBoothHandler(boothSvc).RegisterRoutes(api)
	handler.NewLayoutHandler(layoutSvc).RegisterRoutes(api)

	log.Printf("Venue Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
