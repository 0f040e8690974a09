package main

import (
	"context"
	"fmt"
	"os"
	"time"

	mongoMigration "venuehub/internal/migrations/mongo"
	"venuehub/internal/venues/repository"
	"venuehub/pkg/catalog"
	"venuehub/pkg/config"

	"github.com/urfave/cli/v2"
)

const (
	JobName = "mongo-migration"

	jobTimeout = 120 * time.Second
)

func main() {
	app := &cli.App{
		Name:  JobName,
		Usage: "create collections, validators and indexes, optionally seeding the venue catalog",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "seed",
				Usage:   "upsert the venue catalog after migrating",
				EnvVars: []string{"MIGRATE_SEED"},
			},
			&cli.StringFlag{
				Name:    "seed-file",
				Usage:   "catalog YAML to seed from instead of the built-in catalog",
				EnvVars: []string{"MIGRATE_SEED_FILE"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", JobName, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job")
	db := cfg.Client.Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db, cfg.Log); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if !c.Bool("seed") && c.String("seed-file") == "" {
		cfg.Log.Info("Migration completed successfully")
		return nil
	}

	venues, err := loadCatalog(c.String("seed-file"))
	if err != nil {
		return err
	}
	n, err := mongoMigration.SeedCatalog(ctx, repository.NewMongoVenueRepository(cfg), venues, time.Now(), cfg.Log)
	if err != nil {
		return fmt.Errorf("seeding failed after %d venues: %w", n, err)
	}

	cfg.Log.Info("Migration completed successfully", "seeded_venues", n)
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
