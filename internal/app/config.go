package app

import (
	"fmt"

	"github.com/vk/boardsim/internal/report"
)

// OutputNone disables the report written to the output writer.
const OutputNone = "none"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string   // simulation .hcl file, optional
	EnvFiles   []string // .env files, optional

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
	Seed            uint64 // 0 picks a random seed
	Output          string // text, json or none

	PublishURL       string
	PublishNamespace string
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Output {
	case "":
		cfg.Output = report.FormatText
	case report.FormatText, report.FormatJSON, OutputNone:
	default:
		return nil, fmt.Errorf("invalid output %q: must be 'text', 'json' or 'none'", cfg.Output)
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.HealthcheckPort < 0 {
		return nil, fmt.Errorf("healthcheck port must not be negative, got %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
