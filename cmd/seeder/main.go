// Command seeder loads the subject and prompt-template catalog into the
// database. It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        validate the catalog without writing to DB
//	--seeder-config  path to seeder YAML config file
//	--catalog        catalog file, overrides the config value
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/subject"
	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/template"
	"github.com/heartmarshall/studynotes-backend/internal/app"
	"github.com/heartmarshall/studynotes-backend/internal/app/seeder"
	"github.com/heartmarshall/studynotes-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "validate the catalog without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	catalogFlag := flag.String("catalog", "", "catalog file (overrides config)")
	flag.Parse()

	appCfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *catalogFlag != "" {
		seederCfg.CatalogPath = *catalogFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	catalog, err := seeder.LoadCatalog(seederCfg.CatalogPath)
	if err != nil {
		logger.Error("load catalog", slog.String("path", seederCfg.CatalogPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, subject.New(pool), template.New(pool), *seederCfg)
	if err := pipeline.Run(ctx, catalog, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
