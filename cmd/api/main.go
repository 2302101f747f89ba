package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/carhive/carhive-api/internal/config"
	"github.com/carhive/carhive-api/internal/logging"
	"github.com/carhive/carhive-api/internal/repository/jsonfile"
	"github.com/carhive/carhive-api/internal/repository/postgres"
	"github.com/carhive/carhive-api/internal/service"
	transport "github.com/carhive/carhive-api/internal/transport/http"
	"github.com/carhive/carhive-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr, logging.WriterConfig{})
		if err != nil {
			log.Printf("Warning: logstash writer disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		log.Fatalf("invalid SESSION_TTL %q: %v", cfg.SessionTTL, err)
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)
	bookmarkRepo := postgres.NewBookmarkRepo(db)
	catalogRepo := jsonfile.NewCatalogRepo(cfg.VehicleDataPath)

	jwtManager := util.NewJWTManager(cfg.JWTSecret, sessionTTL)
	authService := service.NewAuthService(userRepo, sessionRepo, jwtManager, sessionTTL, cfg.GoogleAudience)
	catalogService := service.NewCatalogService(catalogRepo)
	reviewService := service.NewReviewService(reviewRepo, catalogRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterPages(e, cfg.FrontendBaseURL)
	transport.RegisterSwagger(e)
	transport.RegisterAuth(e, authService)
	transport.RegisterVehicles(e, catalogService)
	transport.RegisterReviews(e, authService, reviewService)
	transport.RegisterBookmarks(e, authService, bookmarkService, catalogService)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
