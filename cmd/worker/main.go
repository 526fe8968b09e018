package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/app"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/config"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg := config.Load()

	if err := app.RunWorker(&cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
