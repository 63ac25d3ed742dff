package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/wayfare/internal/cli"
	"github.com/alexanderramin/wayfare/internal/collab"
	"github.com/alexanderramin/wayfare/internal/config"
	"github.com/alexanderramin/wayfare/internal/db"
	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/httpapi"
	"github.com/alexanderramin/wayfare/internal/planner"
	"github.com/alexanderramin/wayfare/internal/repository"
	"github.com/alexanderramin/wayfare/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.wayfare/wayfare.db
	dbPath := os.Getenv("WAYFARE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".wayfare", "wayfare.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Tuning file is optional; defaults apply when it is missing.
	cfgPath := os.Getenv("WAYFARE_CONFIG")
	if cfgPath == "" {
		cfgPath = filepath.Join(filepath.Dir(dbPath), "config.yaml")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Collaborator clients, with call logging when requested.
	collabCfg := collab.LoadConfig()
	var collabObserver collab.Observer = collab.NoopObserver{}
	if collabCfg.LogCalls {
		collabObserver = collab.NewLogObserver(os.Stderr)
	}
	venues := collab.NewVenueClient(collabCfg, collabObserver)
	booking := collab.NewBookingClient(collabCfg, collabObserver)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if v := os.Getenv("WAYFARE_LOG_USE_CASES"); v != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	repo := repository.NewSQLiteItineraryRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	engine := decision.NewEngine(cfg.Scoring)
	trip := planner.New(cfg)

	decisions := service.NewDecisionService(venues, engine, observer)
	trips := service.NewTripService(service.TripServiceDeps{
		Venues:  venues,
		Planner: trip,
		Repo:    repo,
		UoW:     uow,
		TxRepo: func(tx db.DBTX) repository.ItineraryRepo {
			return repository.NewSQLiteItineraryRepo(tx)
		},
		Observer: observer,
	})
	bookings := service.NewBookingService(booking, repo, planner.NewAllocator(cfg.Slots).Policy(), observer)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	app := &cli.App{
		Decisions: decisions,
		Trips:     trips,
		Bookings:  bookings,
		API:       httpapi.NewServer(decisions, trips, bookings, logger),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
