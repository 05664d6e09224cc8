package app

import (
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/cricket-ingest/internal/config"
	"github.com/riskibarqy/cricket-ingest/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-ingest/internal/platform/cache"
	idgen "github.com/riskibarqy/cricket-ingest/internal/platform/id"
	"github.com/riskibarqy/cricket-ingest/internal/platform/logging"
	"github.com/riskibarqy/cricket-ingest/internal/usecase"
)

// App bundles the wired ingestion pipeline with the resources it owns.
type App struct {
	Ingest *usecase.IngestService
	db     *sqlx.DB
}

// NewIngestApp opens the database and wires the repositories, the player
// resolver, and the ingestion services. Close releases the database handle.
func NewIngestApp(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	matchRepo := postgres.NewMatchRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)
	officialRepo := postgres.NewOfficialRepository(db)
	inningsRepo := postgres.NewInningsRepository(db)
	deliveryRepo := postgres.NewDeliveryRepository(db)
	partnershipRepo := postgres.NewPartnershipRepository(db)
	summaryRepo := postgres.NewSummaryRepository(db)

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	resolver := usecase.NewPlayerResolver(playerRepo, store, logger)
	normalizer := usecase.NewNormalizeService(
		matchRepo,
		rosterRepo,
		officialRepo,
		inningsRepo,
		deliveryRepo,
		partnershipRepo,
		resolver,
		logger,
		cfg.BallsPerOver,
	)
	ingest := usecase.NewIngestService(normalizer, summaryRepo, idgen.NewRandomGenerator(), logger, cfg.MaxWorkers)

	return &App{Ingest: ingest, db: db}, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
