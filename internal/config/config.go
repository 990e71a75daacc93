package config

import (
	"os"
)

type Config struct {
	MetricsAddr string // empty disables the metrics listener
	LogLevel    string
	SeedDemo    bool
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults suit a local interactive run: no metrics listener, info
	// logs, demo holders seeded.
	env := Config{
		MetricsAddr: "",
		LogLevel:    "info",
		SeedDemo:    true,
	}

	envMetricsAddr := os.Getenv("BANK_METRICS_ADDR")
	envLogLevel := os.Getenv("BANK_LOG_LEVEL")
	envSeedDemo := os.Getenv("BANK_SEED_DEMO")

	if len(envMetricsAddr) != 0 {
		env.MetricsAddr = envMetricsAddr
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	if len(envSeedDemo) != 0 {
		env.SeedDemo = envSeedDemo != "0" && envSeedDemo != "false"
	}

	return &env, nil
}
