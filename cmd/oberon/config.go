package main

import (
	"fmt"
	"os"
)

// Config holds the oberon CLI's configuration, following the issuing
// service's env-default/flag-override pattern: environment variables set
// the baseline, positional flags on the command line override them.
type Config struct {
	KeyFile  string
	LogLevel string
}

// NewConfig builds a Config from args (typically os.Args[2:], after the
// subcommand has been consumed by main).
func NewConfig(args ...string) *Config {
	config := Config{
		KeyFile:  getEnv("OBERON_KEY_FILE", "oberon.key"),
		LogLevel: getEnv("OBERON_LOG_LEVEL", "info"),
	}

	for i := 0; i < len(args); i++ {
		if len(args) <= i+1 {
			panic(fmt.Errorf("missing argument for %s", args[i]))
		}

		switch args[i] {
		case "--key-file":
			config.KeyFile = args[i+1]
			i++
		case "--log-level":
			config.LogLevel = args[i+1]
			i++
		default:
			i++
		}
	}

	return &config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
