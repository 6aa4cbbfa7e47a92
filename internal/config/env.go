package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvPort           = "JOBTRACKER_PORT"
	EnvParseDelay     = "JOBTRACKER_PARSE_DELAY"
	EnvDataset        = "JOBTRACKER_DATASET"
	EnvMaxUploadBytes = "JOBTRACKER_MAX_UPLOAD_BYTES"
	EnvVerbose        = "JOBTRACKER_VERBOSE"
)

// FromEnv reads configuration from environment variables.
// Unset or unparsable variables leave the field zero.
func FromEnv() Config {
	return Config{
		Port:           getEnvInt(EnvPort, 0),
		ParseDelay:     Duration(getEnvDuration(EnvParseDelay, 0)),
		Dataset:        os.Getenv(EnvDataset),
		MaxUploadBytes: int64(getEnvInt(EnvMaxUploadBytes, 0)),
		Verbose:        getEnvBool(EnvVerbose, false),
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
