package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the command-line defaults read from the environment.
type Config struct {
	MapPath   string // Colony map file (OUTPOST_MAP)
	Locale    string // gettext language (OUTPOST_LOCALE)
	LocaleDir string // Directory holding <lang>/LC_MESSAGES/default.po (OUTPOST_LOCALE_DIR)
	NoColor   bool   // Disable colored output (OUTPOST_NO_COLOR)
}

// Load reads a .env file if present and returns the configuration.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MapPath:   getEnvWithDefault("OUTPOST_MAP", "maps/landing.yaml"),
		Locale:    getEnvWithDefault("OUTPOST_LOCALE", "en_GB"),
		LocaleDir: getEnvWithDefault("OUTPOST_LOCALE_DIR", "locales"),
		NoColor:   getEnvAsBool("OUTPOST_NO_COLOR", false),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves a boolean environment variable, logging and falling back to the default if it cannot be parsed.
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be a boolean: %v", key, err)
		return defaultValue
	}
	return b
}
