package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"venue_booking/config"
	"venue_booking/database"
	"venue_booking/helper"
	"venue_booking/router"
	"venue_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		MaxAge:       600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	utils.StartMailWorker()
	helper.StartReminderScheduler()
	helper.StartPurgeScheduler()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	helper.StopReminderScheduler()
	helper.StopPurgeScheduler()
	if err := app.Shutdown(); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
