package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized on top of the config file.
const (
	EnvScript      = "NOTESEXPORT_SCRIPT"
	EnvInterpreter = "NOTESEXPORT_INTERPRETER"
	EnvLogLevel    = "NOTESEXPORT_LOG_LEVEL"
	EnvHome        = "NOTESEXPORT_HOME"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads .env and .env.local when present. Variables already set
// in the process environment win.
func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load env file", "path", name, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", name)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvScript); v != "" {
		cfg.Script.Path = v
	}
	if v := os.Getenv(EnvInterpreter); v != "" {
		cfg.Script.Interpreter = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = LogLevel(v)
	}
}
