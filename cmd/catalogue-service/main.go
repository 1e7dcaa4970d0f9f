package main

import (
	"log"

	"github.com/lingobeats/song-catalogue/config"
	"github.com/lingobeats/song-catalogue/internal/favourite"
	"github.com/lingobeats/song-catalogue/internal/lookup"
	"github.com/lingobeats/song-catalogue/internal/song"
	"github.com/lingobeats/song-catalogue/internal/user"
	"github.com/lingobeats/song-catalogue/pkg/auth"
	"github.com/lingobeats/song-catalogue/pkg/database"
	"github.com/lingobeats/song-catalogue/pkg/storage"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTResetSecret)

	var mailer auth.Mailer
	if cfg.SMTPHost != "" {
		mailer = &auth.SMTPMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
		}
	}

	var covers *storage.MinioStorage
	if cfg.MinioEndpoint != "" {
		covers, err = storage.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, false)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
	}

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), tokens, mailer, cfg.ResetBaseURL))
	songHandler := song.NewHandler(song.NewService(song.NewRepository(db)), covers)
	favouriteHandler := favourite.NewHandler(favourite.NewService(favourite.NewRepository(db)))
	lookupHandler := lookup.NewHandler(lookup.NewRepository(db))

	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	e.POST("/api/users/register", userHandler.Register)
	e.POST("/api/users/login", userHandler.Login)
	e.POST("/api/users/forgot-password", userHandler.ForgotPassword)
	e.POST("/api/users/reset-password", userHandler.ResetPassword)
	e.GET("/api/users", userHandler.ListUsers, tokens.Authenticate, auth.RequireAdmin)
	e.GET("/api/users/:id", userHandler.GetUser, tokens.Authenticate)
	e.PUT("/api/users/:id", userHandler.UpdateUser, tokens.Authenticate)
	e.DELETE("/api/users/:id", userHandler.DeleteUser, tokens.Authenticate)

	e.GET("/api/songs", songHandler.ListSongs, tokens.OptionalIdentity)
	e.GET("/api/songs/:id", songHandler.GetSong)
	e.POST("/api/songs", songHandler.CreateSong, tokens.Authenticate, auth.RequireAdmin)
	e.PUT("/api/songs/:id", songHandler.UpdateSong, tokens.Authenticate, auth.RequireAdmin)
	e.DELETE("/api/songs/:id", songHandler.DeleteSong, tokens.Authenticate, auth.RequireAdmin)
	if covers != nil {
		e.POST("/api/songs/:id/cover", songHandler.UploadCover, tokens.Authenticate, auth.RequireAdmin)
		e.GET("/api/songs/:id/cover", songHandler.GetCover)
	}

	e.POST("/api/favourites", favouriteHandler.UpsertRating)
	e.DELETE("/api/favourites/:userId/:songId", favouriteHandler.Delete)
	e.GET("/api/favourites", favouriteHandler.ListMine, tokens.Authenticate)
	e.GET("/api/favourites/top-songs", favouriteHandler.TopSongs, tokens.Authenticate)
	e.PUT("/api/favourites/:songId", favouriteHandler.Toggle, tokens.Authenticate)

	e.GET("/api/languages", lookupHandler.Languages)
	e.GET("/api/statuses", lookupHandler.Statuses)

	log.Printf("Starting catalogue-service on %s", cfg.ListenAddr)
	if err := e.Start(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
