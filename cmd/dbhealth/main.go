package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	repo "github.com/joseph-ayodele/outfit-advisor/internal/repository"
)

func main() {
	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := repo.Open(ctx, repo.Config{
		Driver:      cfg.Database.Driver,
		DSN:         cfg.Database.DSN,
		MaxConns:    2,
		DialTimeout: 3 * time.Second,
	}, nil)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer store.Close()

	if err := store.HealthCheck(ctx, time.Second); err != nil {
		log.Fatalf("DB health: FAIL (%v)", err)
	}
	log.Printf("DB health: OK (%s)", store.Dialect())

	location := cfg.Weather.DefaultLocation
	if len(os.Args) > 1 {
		location = os.Args[1]
	}
	recs, err := repo.NewWeatherRepository(store, nil).ListByLocation(ctx, location, 5)
	if err != nil {
		log.Fatalf("listing weather records (run outfitctl migrate first?): %v", err)
	}

	log.Printf("latest weather records for %s: %d", location, len(recs))
	for _, r := range recs {
		log.Printf("- %s %.1f°C %s", r.Date, r.Temperature, r.WeatherType)
	}
}
