package main

import (
	"log"

	"courseadmin/cache"
	"courseadmin/config"
	"courseadmin/controllers"
	"courseadmin/database"
	"courseadmin/routers/courseRoutes"
	"courseadmin/routers/instructorRoutes"
	"courseadmin/routers/tagRoutes"
	"courseadmin/store"
	"courseadmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	stores := store.New(database.Database.Db, cache.New())
	controllers.Init(stores)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courseRoutes.SetupCourseRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)
	tagRoutes.SetupTagRoutes(app)

	if config.AppConfig.CacheWarmEnabled {
		utils.StartCacheWarmer(stores)
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
