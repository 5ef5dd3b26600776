package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/matchup-stats/internal/config"
	"github.com/mauv0809/matchup-stats/internal/database"
	"github.com/mauv0809/matchup-stats/internal/metrics"
	"github.com/mauv0809/matchup-stats/internal/roster"
	"github.com/mauv0809/matchup-stats/internal/stats"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// seedPlayer is a made-up player; ids are six digits like real roster ids.
type seedPlayer struct {
	Name string
	ID   string
}

func main() {
	numPicks := flag.Int("picks", 10000, "number of picks to record")
	numPlayers := flag.Int("players", 12, "number of candidate players per matchup")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	perSecond := flag.Int("rate", 0, "maximum picks per second, 0 for unlimited")
	flag.Parse()
	if err := validateFlags(*numPicks, *numPlayers, *perSecond); err != nil {
		log.Fatalf("Invalid flags: %s", err)
	}

	log.Info("Starting database seeder...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	db, teardown, err := database.InitDB(cfg.DatabasePath(), cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()
	log.Info("Successfully connected to the database.", "path", cfg.DatabasePath())

	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	store := stats.New(db, roster.NewLookup(cfg.Roster.PictureURLTemplate), metricsSvc)

	rng := rand.New(rand.NewSource(*seed))
	players := make([]seedPlayer, *numPlayers)
	for i := range players {
		players[i] = seedPlayer{
			Name: fmt.Sprintf("Seeder Player %d", i+1),
			ID:   fmt.Sprintf("%06d", rng.Intn(1000000)),
		}
	}
	teams := roster.Teams()

	// Remote databases throttle bursts, so the seeder can pace itself.
	limit := rate.Inf
	if *perSecond > 0 {
		limit = rate.Limit(*perSecond)
	}
	limiter := rate.NewLimiter(limit, 1)

	log.Info("Preparing to record dummy picks...", "total", *numPicks, "players", *numPlayers, "seed", *seed)
	startTime := time.Now()
	ctx := context.Background()

	for i := 0; i < *numPicks; i++ {
		if err := limiter.Wait(ctx); err != nil {
			log.Fatalf("Rate limiter failed: %s", err)
		}
		a := rng.Intn(len(teams))
		b := rng.Intn(len(teams) - 1)
		if b >= a {
			b++
		}
		// Skew towards the first players so every matchup has a clear favourite.
		p := players[int(float64(len(players))*rng.Float64()*rng.Float64())]

		pair := stats.TeamPair{TeamA: teams[a], TeamB: teams[b]}
		if err := store.RecordPick(ctx, pair, p.Name, p.ID); err != nil {
			log.Fatalf("Failed to record pick %d: %s", i, err)
		}
		if (i+1)%1000 == 0 {
			log.Info("Recorded picks", "count", i+1)
		}
	}

	log.Info("Seeding complete!", "picks", *numPicks, "duration", time.Since(startTime))
}

func validateFlags(numPicks, numPlayers, perSecond int) error {
	if numPicks < 0 {
		return fmt.Errorf("-picks must not be negative, got %d", numPicks)
	}
	if numPlayers < 1 {
		return fmt.Errorf("-players must be at least 1, got %d", numPlayers)
	}
	if perSecond < 0 {
		return fmt.Errorf("-rate must not be negative, got %d", perSecond)
	}
	return nil
}
