package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weathervane/internal/config"
	"weathervane/internal/logging"
	"weathervane/internal/repository/postgres"
	"weathervane/internal/service"
	transport "weathervane/internal/transport/http"
	"weathervane/internal/weather"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalw("database connect", "err", err)
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db); err != nil {
		logger.Fatalw("migrations", "err", err)
	}

	userRepo := postgres.NewUserRepo(db)
	locationRepo := postgres.NewLocationRepo(db)
	favoriteRepo := postgres.NewFavoriteRepo(db)

	gateway := weather.NewClient(
		cfg.WeatherBaseURL,
		cfg.AirQualityURL,
		cfg.APIKey,
		logger,
		weather.WithTimeout(cfg.UpstreamTimeout),
	)

	users := service.NewUserService(userRepo, logger)
	locations := service.NewLocationService(locationRepo, gateway, logger)
	favorites := service.NewFavoriteService(favoriteRepo, logger)
	auth := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	e := transport.NewRouter(cfg.AllowOrigins, logger)
	transport.RegisterHealth(e, db)
	transport.RegisterUsers(e, users)
	transport.RegisterLocations(e, locations)
	transport.RegisterFavorites(e, favorites, locations)
	transport.RegisterAuth(e, auth)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server start", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Errorw("shutdown", "err", err)
	}
}
