package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"             // .env loader for local development
	"github.com/labstack/echo/v4"          // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware (CORS)

	"github.com/iliyamo/medical-camp-registration/internal/config"     // Internal config loader
	"github.com/iliyamo/medical-camp-registration/internal/database"   // MySQL open + migrations
	"github.com/iliyamo/medical-camp-registration/internal/handler"    // HTTP handlers
	"github.com/iliyamo/medical-camp-registration/internal/middleware" // cache + ratelimit middleware
	"github.com/iliyamo/medical-camp-registration/internal/payments"   // payment-intent provider
	"github.com/iliyamo/medical-camp-registration/internal/queue"      // background consumer
	"github.com/iliyamo/medical-camp-registration/internal/repository" // DB repositories
	"github.com/iliyamo/medical-camp-registration/internal/router"     // Internal router setup
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}
	cfg := config.Load() // Load environment config

	// Open MySQL and apply pending migrations before serving traffic.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	// Redis backs the response cache and the rate limiter.  A nil client
	// disables both instead of blocking startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: response cache and rate limiting disabled")
	}

	// Repositories share the one connection pool.
	users := repository.NewUserRepo(db)
	camps := repository.NewCampRepo(db)
	regs := repository.NewRegistrationRepo(db)
	pays := repository.NewPaymentRepo(db)
	reviews := repository.NewReviewRepo(db)
	donors := repository.NewDonorRepo(db)

	h := router.Handlers{
		Auth:          handler.NewAuthHandler(cfg.JWTSecret),
		Users:         handler.NewUserHandler(users),
		Camps:         handler.NewCampHandler(camps),
		Registrations: handler.NewRegistrationHandler(regs, camps),
		Payments:      handler.NewPaymentHandler(pays, regs, payments.NewStripe(cfg.StripeSecret)),
		Reviews:       handler.NewReviewHandler(reviews),
		Donors:        handler.NewDonorHandler(donors),
	}

	e := echo.New() // Create Echo instance
	e.Validator = handler.NewValidator()
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.AllowedOrigins}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	router.RegisterRoutes(e)
	router.RegisterAPI(e, h, cfg.JWTSecret, users, cache)

	// Consume confirmation events in the background; the consumer runs its
	// own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
