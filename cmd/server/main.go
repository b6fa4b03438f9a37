package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "photofeed/configs"
	"photofeed/internal/api/handlers"
	"photofeed/internal/repository"
	"photofeed/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	store, err := service.NewS3Store(*cfg)
	if err != nil {
		log.Fatalf("Failed to configure object storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 8 * 1024 * 1024, // image uploads are capped at 8 MiB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postRepo := repository.NewPostRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	postService := service.NewPostService(postRepo, likeRepo, commentRepo, store)
	commentService := service.NewCommentService(commentRepo)

	app.Get("/healthz", handlers.Health)

	api := app.Group("/api")

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts", post.CreatePost)
	api.Delete("/posts/:id", post.DeletePost)
	api.Post("/posts/:id/like", post.LikePost)

	comment := handlers.NewCommentHandler(commentService)
	api.Get("/posts/:id/comments", comment.ListComments)
	api.Post("/posts/:id/comments", comment.CreateComment)

	// Front-end bundle, then a single fallback document for anything
	// unmatched.
	app.Static("/", cfg.StaticDir)
	app.Use(func(c *fiber.Ctx) error {
		index := filepath.Join(cfg.StaticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			return c.SendFile(index)
		}
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
