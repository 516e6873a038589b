package main

import (
	"flag"
	"os"

	"github.com/notepadhq/notepad-backend/internal/platform/logger"
	"github.com/notepadhq/notepad-backend/notepadservice"
)

func main() {
	// Optional store-driver flag override (postgrest | postgres | sqlite)
	dbDriver := flag.String("db-driver", "", "Override NOTEPAD_DB_DRIVER (postgrest, postgres, sqlite)")
	flag.Parse()

	if err := notepadservice.Run(*dbDriver); err != nil {
		log := logger.New("notepad-service")
		log.Error().Err(err).Msg("service exited with error")
		os.Exit(1)
	}
}
