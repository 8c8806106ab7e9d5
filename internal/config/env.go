package config

import (
	"os"
	"strings"
)

// Development is true when DEVELOPMENT is set to anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// Port returns APP_PORT as a listen address, so both "8080" and ":8080"
// work. Empty when unset.
func Port() string {
	port := strings.TrimSpace(os.Getenv("APP_PORT"))
	if port == "" || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func BasePath() string {
	return strings.TrimSuffix(os.Getenv("APP_BASE_PATH"), "/")
}
