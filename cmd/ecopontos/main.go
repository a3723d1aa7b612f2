package main

import (
	"github.com/mfreitas/ecopontos/internal/config"
	"github.com/mfreitas/ecopontos/internal/db"
	"github.com/mfreitas/ecopontos/internal/logging"
	"github.com/mfreitas/ecopontos/internal/service"
	"github.com/mfreitas/ecopontos/internal/store"
	"github.com/mfreitas/ecopontos/internal/web"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	itemStore := store.NewItemStore(database)
	pointStore := store.NewPointStore(database)

	catalogService := service.NewCatalogService(itemStore, cfg.AssetBaseURL)
	pointService := service.NewPointService(pointStore, cfg.PointImageURL, logger)

	server := web.NewServer(catalogService, pointService, cfg.UploadsDir, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
