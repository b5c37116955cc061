package main

import (
	"log/slog"
	"os"

	"questup-backend/internal/config"
	"questup-backend/internal/database"
	"questup-backend/internal/server"

	_ "questup-backend/docs"

	"github.com/lmittmann/tint"
)

// @title           Questup API
// @version         1.0
// @description     Classroom Q&A backend: teachers open rooms, students post and vote on questions.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo})))

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)

	if err := database.AutoMigrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	r := server.New(cfg, db)

	slog.Info("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
