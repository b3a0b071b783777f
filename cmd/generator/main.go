package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"atm-stream-generator/internal/config"
	"atm-stream-generator/internal/delivery"
	"atm-stream-generator/internal/fake"
	"atm-stream-generator/internal/repository"
	"atm-stream-generator/internal/routes"
	"atm-stream-generator/internal/services/population"
	"atm-stream-generator/internal/services/synthesis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("invalid configuration:", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Println("Using seed:", seed)

	// One seeded source threaded through population construction and
	// synthesis keeps runs reproducible for a given seed.
	rng := rand.New(rand.NewSource(seed))
	factory := population.NewFactory(rng, fake.NewProvider(uint64(seed)))
	atms := factory.BuildATMs(cfg.ATMCount)
	customers := factory.BuildCustomers(cfg.CustomerCount)

	repo := repository.NewPopulationRepository(atms, customers)
	engine := synthesis.NewEngine(rng)

	// Log one sample record before the continuous loop starts.
	sample := engine.Synthesize(repo.ATMs(), repo.Customers())
	if pretty, err := json.MarshalIndent(sample, "", "  "); err == nil {
		log.Printf("Sample transaction:\n%s", pretty)
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, repo, engine, seed)

	go func() {
		if err := r.Run(cfg.ServerAddr); err != nil {
			log.Fatalln("ops server:", err)
		}
	}()

	sender := delivery.NewSender(cfg.IngestEndpoint, cfg.RequestTimeout)
	streamer := delivery.NewStreamer(sender, engine, repo, cfg.BatchSize, cfg.Interval())

	log.Println("Starting continuous ATM transaction generation")
	log.Printf("Sending %d transaction(s) every %d seconds", cfg.BatchSize, cfg.IntervalSeconds)
	log.Println("Ingestion endpoint:", cfg.IngestEndpoint)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := streamer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalln("stream loop:", err)
	}
	log.Println("Stopping transaction generation")
}
