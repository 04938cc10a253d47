package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DatabaseDSN    string
	StrictNotFound bool
	DBDebug        bool
}

func Load() (Config, error) {
	strict, err := getEnvAsBool("TASK_STRICT_NOT_FOUND", false)
	if err != nil {
		return Config{}, err
	}

	debug, err := getEnvAsBool("DB_DEBUG", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DatabaseDSN:    getEnv("DATABASE_DSN", "tasks.db"),
		StrictNotFound: strict,
		DBDebug:        debug,
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean value for %s: %q", key, v)
		}
		return b, nil
	}
	return defaultVal, nil
}
