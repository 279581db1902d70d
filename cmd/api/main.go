package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/rrparlour/parlour-booking/internal/config"
	dbpkg "github.com/rrparlour/parlour-booking/internal/db"
	"github.com/rrparlour/parlour-booking/internal/routes"
	"github.com/rrparlour/parlour-booking/internal/search"
	"github.com/rrparlour/parlour-booking/internal/session"
	"github.com/rrparlour/parlour-booking/internal/storage"
)

const sessionTTL = 24 * time.Hour

func main() {

	logg := newLogger()

	if err := godotenv.Load(); err != nil {
		logg.Info().Msg("no .env file found")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logg.Fatal().Err(err).Msg("failed to connect redis")
	}

	sessions, err := session.NewManager(session.NewRedisStore(redisClient), cfg.SessionSecret, sessionTTL)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to build session manager")
	}

	store, err := newStore(cfg)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to initialize content store")
	}

	searchClient := search.NewClient(cfg.GoogleAPIKey, cfg.GoogleCXID)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Sessions: sessions,
		Store:    store,
		Search:   searchClient,
		Logger:   logg,
	})

	logg.Info().Str("addr", cfg.Addr()).Bool("search", searchClient.Available()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logg.Fatal().Err(err).Msg("failed to start server")
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3Store(cfg), nil
	}
	return storage.NewLocalStore(cfg.UploadDir)
}

func newLogger() zerolog.Logger {
	var out = zerolog.New(os.Stdout)
	if os.Getenv("LOG_FORMAT") == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
	return out.With().Timestamp().Str("service", "parlour-booking").Logger()
}
