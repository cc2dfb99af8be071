package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/config"
	"github.com/iliyamo/experience-booking/internal/database"
	"github.com/iliyamo/experience-booking/internal/handler"
	"github.com/iliyamo/experience-booking/internal/middleware"
	"github.com/iliyamo/experience-booking/internal/queue"
	"github.com/iliyamo/experience-booking/internal/repository"
	"github.com/iliyamo/experience-booking/internal/router"
	queue_publisher "github.com/iliyamo/experience-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client turns the cache and the rate
	// limiter into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	experienceRepo := repository.NewExperienceRepo(db)
	slotRepo := repository.NewSlotRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	promoRepo := repository.NewPromoRepo(db)

	catalogHandler := handler.NewCatalogHandler(experienceRepo)
	promoHandler := handler.NewPromoHandler(promoRepo)
	bookingHandler := handler.NewBookingHandler(bookingRepo, slotRepo, queue_publisher.PublishBookingConfirmed)
	quoteHandler := handler.NewQuoteHandler(slotRepo, promoRepo)

	e := echo.New()
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewCatalogCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterCatalog(e, catalogHandler)
	router.RegisterBooking(e, bookingHandler, promoHandler, quoteHandler)

	// Background consumer appends confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
