package config

import (
	"errors"
	"log/slog"
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

// loadEnvFile loads the first existing file of paths into the process
// environment. Variables that are already set are not overridden.
func loadEnvFile(paths []string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("Failed to load environment file", "file", p, "error", err)
			return "", err
		}
		slog.Debug("Loaded environment variables", "file", p)
		return p, nil
	}
	return "", errors.New("no .env file found")
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${NAME} references with their environment values. Unset
// variables expand to the empty string. Bare $ is left alone, so routes and
// titles may contain a literal dollar sign.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		value, _ := os.LookupEnv(envRef.FindStringSubmatch(ref)[1])
		return value
	})
}
