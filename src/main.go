package main

import (
	"context"
	_ "course-catalog/docs"
	"course-catalog/src/config"
	"course-catalog/src/controllers"
	"course-catalog/src/database"
	"course-catalog/src/jobs"
	"course-catalog/src/routes"
	"course-catalog/src/services/categories"
	"course-catalog/src/services/courses"
	"course-catalog/src/services/orderitems"
	"course-catalog/src/services/uploads"
	"course-catalog/src/utils"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
)

// @title        Course Catalog API
// @version      1.0
// @description  Course catalog with category filtering and thumbnail uploads.
// @BasePath     /
func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// run owns every deferred cleanup; main only reports its error.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := context.Background()

	mongoClient, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		return fmt.Errorf("connect to the database: %w", err)
	}
	defer mongoClient.Disconnect(context.Background())
	collections := database.NewCollections(mongoClient, cfg.MongoDB)

	redisClient, err := database.InitRedis(ctx, cfg.RedisURI)
	if err != nil {
		log.Printf("⚠️ Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	files := uploads.DiskStorage{Dir: cfg.UploadDir}

	var (
		asynqClient *asynq.Client
		worker      *asynq.Server
	)
	if redisClient != nil {
		asynqClient = database.InitAsynq(cfg.RedisURI)
		defer asynqClient.Close()

		worker = jobs.NewServer(cfg.RedisURI)
		mux := asynq.NewServeMux()
		jobs.RegisterHandlers(mux, files)
		go func() {
			if err := worker.Run(mux); err != nil {
				log.Println("❌ Asynq worker stopped:", err)
			}
		}()
	}

	courseStore := courses.NewMongoStore(collections.Courses, database.CategoryCollectionName)
	if err := courseStore.EnsureIndexes(ctx); err != nil {
		log.Println("⚠️ Failed to create course indexes:", err)
	}

	courseService := courses.NewService(
		courseStore,
		categories.NewMongoLookup(collections.Categories),
		utils.NewRedisCache(redisClient),
		courses.Options{Timeout: cfg.RequestTimeout, CacheTTL: cfg.CacheTTL},
	)
	orderItemService := orderitems.NewService(orderitems.NewMongoStore(collections.OrderItems), cfg.RequestTimeout)

	app := routes.NewApp(routes.AppConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		UploadDir:      cfg.UploadDir,
		PublicPath:     cfg.UploadPublicPath,
		BodyLimit:      int(cfg.MaxImageSize) + 1<<20,
	}, routes.Handlers{
		Courses: controllers.NewCourseController(
			courseService,
			uploads.NewImageIntake(files, cfg.MaxImageSize),
			jobs.NewDispatcher(asynqClient, files),
			cfg.UploadPublicPath,
		),
		OrderItems: controllers.NewOrderItemController(orderItemService),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if worker != nil {
			worker.Shutdown()
		}
		_ = app.Shutdown()
	}()

	log.Println("Server is running on port " + cfg.AppPort)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
