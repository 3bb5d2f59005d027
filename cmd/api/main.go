package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/contapyme/contapyme/pkg/logger"
)

func main() {
	log := logger.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Warn("archivo .env no encontrado, se usan las variables de entorno")
	}

	app, err := NewApp(context.Background(), log)
	if err != nil {
		log.Error("no se pudo inicializar la aplicación", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		log.Error("el servidor terminó con error", "error", err)
		os.Exit(1)
	}
}
