package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDSN        string
	TemplatesDir string
	LogFile      string
	SeedDemo     bool
}

func Load() Config {
	// Best effort: a missing .env file is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "depotlog.db"
	} // sqlite file in project root
	tpl := os.Getenv("TEMPLATES_DIR")
	if tpl == "" {
		tpl = "./web/templates"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./depotlog.log" // default log sink in project root
	}
	seed := os.Getenv("SEED_DEMO") != "0"

	cfg := Config{Port: port, DBDSN: dsn, TemplatesDir: tpl, LogFile: logFile, SeedDemo: seed}
	log.Printf("[config] PORT=%s DB_DSN=%s TEMPLATES_DIR=%s LOG_FILE=%s SEED_DEMO=%v",
		cfg.Port, cfg.DBDSN, cfg.TemplatesDir, cfg.LogFile, cfg.SeedDemo)
	return cfg
}
