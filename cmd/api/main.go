package main

import (
	"os"

	"github.com/placementcell/portal/internal/bootstrap"
	"github.com/placementcell/portal/internal/server"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Database setup failed")
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Dependency initialization failed")
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	srv := server.New(cfg, router)
	if err := srv.Run(); err != nil {
		lgr.Fatal().Err(err).Msg("Server exited with error")
	}
}
