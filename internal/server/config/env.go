package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables recognized by the server.
const (
	envAddress       = "SNIPPR_ADDRESS"
	envEncryptionKey = "SNIPPR_ENCRYPTION_KEY"
	envSecretKey     = "SNIPPR_SECRET_KEY"
	envTokenValidity = "SNIPPR_TOKEN_VALIDITY_MINUTES"
	envSeedFile      = "SNIPPR_SEED_FILE"
)

func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(envAddress); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv(envEncryptionKey); ok {
		config.EncryptionKey = v
	}
	if v, ok := os.LookupEnv(envSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(envTokenValidity); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv(envSeedFile); ok {
		config.SeedFile = v
	}
}
