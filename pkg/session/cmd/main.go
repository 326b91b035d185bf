// Command session-sweep removes expired session records from MongoDB. The
// TTL monitor normally does this on its own; the sweep exists for
// deployments where it is disabled and as a way to reclaim space
// immediately. Run it from cron or a scheduler:
//
//	MONGODB_URL=mongodb://localhost:27017 session-sweep
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/invoicekit/pkg/config"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
	"github.com/dmitrymomot/invoicekit/pkg/mongo"
	"github.com/dmitrymomot/invoicekit/pkg/session/mongostore"
)

type sweepConfig struct {
	Database string        `env:"MONGODB_DATABASE" envDefault:"billing"`
	Timeout  time.Duration `env:"SESSION_SWEEP_TIMEOUT" envDefault:"30s"`
}

func main() {
	var (
		mongoCfg mongo.Config
		logCfg   logger.Config
		cfg      sweepConfig
	)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&logCfg)
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(logCfg, logger.WithService("session-sweep"))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	db, err := mongo.NewWithDatabase(ctx, mongoCfg, cfg.Database)
	if err != nil {
		log.ErrorContext(ctx, "mongo connection failed", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	store := mongostore.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		log.WarnContext(ctx, "sessions TTL index not ensured", logger.Error(err))
	}

	start := time.Now()
	removed, err := store.DeleteExpired(ctx)
	if err != nil {
		log.ErrorContext(ctx, "expired session sweep failed", logger.Error(err))
		os.Exit(1)
	}

	log.InfoContext(ctx, "expired sessions removed",
		slog.Int64("count", removed),
		logger.Duration(time.Since(start)),
	)
}
