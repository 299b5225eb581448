package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticket-booking/internal/config"
	"github.com/iliyamo/event-ticket-booking/internal/database"
	"github.com/iliyamo/event-ticket-booking/internal/handler"
	"github.com/iliyamo/event-ticket-booking/internal/middleware"
	"github.com/iliyamo/event-ticket-booking/internal/queue"
	"github.com/iliyamo/event-ticket-booking/internal/repository"
	"github.com/iliyamo/event-ticket-booking/internal/router"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	// A failed database connection does not abort startup: handlers answer
	// every request with the database-unavailable envelope until the store
	// comes back and the process is restarted.
	db, err := database.Open(cfg)
	if err != nil {
		log.Printf("database connection error: %v", err)
		db = nil
	}

	// Redis is optional; a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	customers := repository.NewCustomerRepo(db)
	events := repository.NewEventRepo(db)
	tickets := repository.NewTicketRepo(db)
	reports := repository.NewReportRepo(db)

	e := echo.New()
	e.Use(middleware.RateLimit(rateCfg, rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, customers))
	router.RegisterCatalog(e, handler.NewCatalogHandler(events), cacheCfg, rdb)
	router.RegisterBooking(e, handler.NewBookingHandler(tickets), cfg.SessionSecret)
	router.RegisterReports(e, handler.NewReportHandler(reports, customers), cfg.SessionSecret, cacheCfg, rdb)

	// Background consumer that records ticket events to logs/ticket.log.
	go queue.StartTicketConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
