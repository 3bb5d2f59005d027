package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/contapyme/contapyme/internal/infrastructure/database"
	"github.com/contapyme/contapyme/pkg/logger"
)

func main() {
	var (
		path = flag.String("path", "migrations", "directorio con los archivos de migración")
		down = flag.Bool("down", false, "revierte la última migración en vez de aplicar")
	)
	flag.Parse()

	log := logger.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Warn("archivo .env no encontrado, se usan las variables de entorno")
	}

	if *down {
		if err := database.RollbackMigration(*path); err != nil {
			log.Error("no se pudo revertir la migración", "error", err)
			os.Exit(1)
		}
		log.Info("migración revertida")
		return
	}

	if err := database.RunMigrations(*path); err != nil {
		log.Error("no se pudieron aplicar las migraciones", "error", err)
		os.Exit(1)
	}
	log.Info("migraciones aplicadas")
}
